package adoptionrequest

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Filter: ceros no filtran.
type Filter struct {
	ProfileID uint
	PetID     uint
	Statuses  []string
}

// Store lo comparten citas y adopción.
type Store interface {
	GetRequest(ctx context.Context, id uint) (*models.AdoptionRequest, error)
	UpdateRequest(ctx context.Context, r *models.AdoptionRequest) error
}

type Repository interface {
	Store
	pet.Store
	document.Reader

	CreateRequest(ctx context.Context, r *models.AdoptionRequest) error
	ListRequests(ctx context.Context, f Filter) ([]models.AdoptionRequest, error)

	GetProfile(ctx context.Context, id uint) (*models.Profile, error)
}
