package followup

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Filter struct {
	AdoptionID uint
	// ProfileID filtra por el adoptante dueño de la adopción.
	ProfileID uint
	// OnlyOpen excluye los completados.
	OnlyOpen bool
	// DueBefore: fecha_objetivo < DueBefore.
	DueBefore *time.Time
}

type Repository interface {
	GetFollowUp(ctx context.Context, id uint) (*models.FollowUp, error)
	UpdateFollowUp(ctx context.Context, f *models.FollowUp) error
	ListFollowUps(ctx context.Context, f Filter) ([]models.FollowUp, error)

	GetAdoption(ctx context.Context, id uint) (*models.Adoption, error)
	UpdateAdoption(ctx context.Context, a *models.Adoption) error
}
