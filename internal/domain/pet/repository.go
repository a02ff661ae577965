package pet

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Store cubre lecturas y escrituras de mascotas; otros dominios lo embeben.
type Store interface {
	GetPet(ctx context.Context, id uint) (*models.Pet, error)

	// SetPetStatus escribe solo estado y disponible_adopcion.
	SetPetStatus(ctx context.Context, petID uint, status string, available bool) error
}

type Repository interface {
	Store

	CreatePet(ctx context.Context, p *models.Pet) error
	// UpdatePet escribe solo la ficha (nombre, especie, foto...); nunca estado
	// ni disponible_adopcion, que pertenecen al ciclo de adopción.
	UpdatePet(ctx context.Context, p *models.Pet) error
	ListPets(ctx context.Context, f Filter) ([]models.Pet, error)
}
