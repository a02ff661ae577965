package document

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Reader lo embeben los dominios que necesitan calcular readiness.
type Reader interface {
	ListDocuments(ctx context.Context, profileID uint) ([]models.Document, error)
}

type Repository interface {
	Reader

	GetDocument(ctx context.Context, id uint) (*models.Document, error)

	// UpsertDocument inserta o pisa el registro (perfil, tipo) y deja
	// d.ID con el id persistido.
	UpsertDocument(ctx context.Context, d *models.Document) error
	UpdateDocument(ctx context.Context, d *models.Document) error

	GetProfile(ctx context.Context, id uint) (*models.Profile, error)
}
