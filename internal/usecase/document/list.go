package document

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type ListDocuments struct {
	repo domain.Repository
}

func NewListDocuments(repo domain.Repository) *ListDocuments {
	return &ListDocuments{repo: repo}
}

func (uc *ListDocuments) Execute(ctx context.Context, actor auth.Actor, profileID uint) ([]models.Document, error) {
	if err := auth.RequireOwnerOrAdmin(actor, profileID); err != nil {
		return nil, err
	}

	docs, err := uc.repo.ListDocuments(ctx, profileID)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return docs, nil
}

// Readiness es la respuesta de aggregateReadiness.
type Readiness struct {
	Status    domain.Readiness  `json:"estado"`
	Missing   []domain.Type     `json:"faltantes"`
	Documents []models.Document `json:"documentos"`
}

type GetReadiness struct {
	repo domain.Repository
}

func NewGetReadiness(repo domain.Repository) *GetReadiness {
	return &GetReadiness{repo: repo}
}

func (uc *GetReadiness) Execute(ctx context.Context, actor auth.Actor, profileID uint) (*Readiness, error) {
	if err := auth.RequireOwnerOrAdmin(actor, profileID); err != nil {
		return nil, err
	}

	docs, err := uc.repo.ListDocuments(ctx, profileID)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	missing := domain.MissingTypes(docs)
	if missing == nil {
		missing = []domain.Type{}
	}

	return &Readiness{
		Status:    domain.AggregateReadiness(docs),
		Missing:   missing,
		Documents: docs,
	}, nil
}
