package profile

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Filter struct {
	Role   string
	Query  string
	Active *bool
}

type Repository interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	GetProfile(ctx context.Context, id uint) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetProfileByConfirmToken(ctx context.Context, hash string) (*models.Profile, error)
	GetProfileByResetToken(ctx context.Context, hash string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) error
	ListProfiles(ctx context.Context, f Filter) ([]models.Profile, error)
}
