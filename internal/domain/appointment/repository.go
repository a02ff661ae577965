package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// VisitFilter: ceros no filtran; From/To acotan fecha_hora [From, To).
type VisitFilter struct {
	RequestID uint
	ProfileID uint
	Statuses  []string
	From      *time.Time
	To        *time.Time
}

type VetFilter struct {
	ProfileID uint
	PetID     uint
	Statuses  []string
	From      *time.Time
	To        *time.Time
}

// VisitStore lo usa también la finalización de adopción.
type VisitStore interface {
	ListVisits(ctx context.Context, f VisitFilter) ([]models.VisitAppointment, error)
}

type Repository interface {
	VisitStore
	adoptionrequest.Store
	pet.Store
	document.Reader

	// -------- Visit --------
	CreateVisit(ctx context.Context, v *models.VisitAppointment) error
	GetVisit(ctx context.Context, id uint) (*models.VisitAppointment, error)
	UpdateVisit(ctx context.Context, v *models.VisitAppointment) error

	// -------- Veterinary --------
	CreateVetAppointment(ctx context.Context, v *models.VetAppointment) error
	GetVetAppointment(ctx context.Context, id uint) (*models.VetAppointment, error)
	UpdateVetAppointment(ctx context.Context, v *models.VetAppointment) error
	ListVetAppointments(ctx context.Context, f VetFilter) ([]models.VetAppointment, error)

	// -------- Lookups --------
	GetProfile(ctx context.Context, id uint) (*models.Profile, error)
	GetAdoption(ctx context.Context, id uint) (*models.Adoption, error)
}
