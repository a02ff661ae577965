package adoptionrequest

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type GetRequest struct {
	repo domain.Repository
}

func NewGetRequest(repo domain.Repository) *GetRequest {
	return &GetRequest{repo: repo}
}

func (uc *GetRequest) Execute(ctx context.Context, actor auth.Actor, requestID uint) (*models.AdoptionRequest, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, httperr.FromStore(err, "request_not_found")
	}
	if err := auth.RequireOwnerOrAdmin(actor, req.ProfileID); err != nil {
		return nil, err
	}
	return req, nil
}

type ListRequests struct {
	repo domain.Repository
}

func NewListRequests(repo domain.Repository) *ListRequests {
	return &ListRequests{repo: repo}
}

// Execute: el adoptante solo ve las suyas; el admin filtra libremente.
func (uc *ListRequests) Execute(ctx context.Context, actor auth.Actor, f domain.Filter) ([]models.AdoptionRequest, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	if !actor.IsAdmin() {
		f.ProfileID = actor.ProfileID
	}

	for _, s := range f.Statuses {
		switch domain.Status(s) {
		case domain.StatusPending, domain.StatusApproved, domain.StatusRejected,
			domain.StatusCancelled, domain.StatusAdopted:
		default:
			return nil, httperr.Validation("invalid_status")
		}
	}

	out, err := uc.repo.ListRequests(ctx, f)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return out, nil
}
