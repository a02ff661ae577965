package adoption

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Filter struct {
	ProfileID uint
	PetID     uint
	Status    string
}

type Repository interface {
	adoptionrequest.Store
	appointment.VisitStore

	// FinalizeAdoption persiste en una sola transacción: la adopción,
	// sus seguimientos, la solicitud en adoptada y la mascota en adoptada.
	// Un segundo intento para la misma solicitud choca con uq_adopcion_solicitud.
	FinalizeAdoption(ctx context.Context, a *models.Adoption, followUps []models.FollowUp) error

	GetAdoption(ctx context.Context, id uint) (*models.Adoption, error)
	GetAdoptionByRequest(ctx context.Context, requestID uint) (*models.Adoption, error)
	ListAdoptions(ctx context.Context, f Filter) ([]models.Adoption, error)

	GetProfile(ctx context.Context, id uint) (*models.Profile, error)
}
