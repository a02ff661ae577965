package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
)

var (
	_ profile.Repository         = (*GormStore)(nil)
	_ pet.Repository             = (*GormStore)(nil)
	_ document.Repository        = (*GormStore)(nil)
	_ adoptionrequest.Repository = (*GormStore)(nil)
	_ appointment.Repository     = (*GormStore)(nil)
	_ adoption.Repository        = (*GormStore)(nil)
	_ followup.Repository        = (*GormStore)(nil)
	_ donation.Repository        = (*GormStore)(nil)
)

// Invalidator lo implementa el cache del listado público de mascotas.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// GormStore implementa todos los repositorios de dominio sobre postgres.
type GormStore struct {
	db        *gorm.DB
	petsCache Invalidator
}

type Option func(*GormStore)

// WithPetCache invalida el listado público en cada escritura de mascotas.
func WithPetCache(c Invalidator) Option {
	return func(s *GormStore) { s.petsCache = c }
}

func NewGormStore(db *gorm.DB, opts ...Option) *GormStore {
	s := &GormStore{db: db}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *GormStore) petsChanged(ctx context.Context) {
	if s.petsCache != nil {
		s.petsCache.Invalidate(ctx)
	}
}
