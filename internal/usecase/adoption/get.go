package adoption

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Detail es la adopción con los seguimientos en su estado derivado.
type Detail struct {
	models.Adoption
	FollowUps []followup.View `json:"seguimientos"`
}

func newDetail(a *models.Adoption, now time.Time, loc *time.Location) *Detail {
	return &Detail{Adoption: *a, FollowUps: followup.Views(a.FollowUps, now, loc)}
}

type GetAdoption struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetAdoption(repo domain.Repository, loc *time.Location) *GetAdoption {
	return &GetAdoption{repo: repo, loc: loc, now: time.Now}
}

func (uc *GetAdoption) Execute(ctx context.Context, actor auth.Actor, id uint) (*Detail, error) {
	a, err := uc.repo.GetAdoption(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "adoption_not_found")
	}
	if err := auth.RequireOwnerOrAdmin(actor, a.ProfileID); err != nil {
		return nil, err
	}
	return newDetail(a, uc.now(), uc.loc), nil
}

type ListAdoptions struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListAdoptions(repo domain.Repository, loc *time.Location) *ListAdoptions {
	return &ListAdoptions{repo: repo, loc: loc, now: time.Now}
}

func (uc *ListAdoptions) Execute(ctx context.Context, actor auth.Actor, f domain.Filter) ([]Detail, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	if !actor.IsAdmin() {
		f.ProfileID = actor.ProfileID
	}
	switch domain.Status(f.Status) {
	case "", domain.StatusActive, domain.StatusCompleted:
	default:
		return nil, httperr.Validation("invalid_status")
	}

	list, err := uc.repo.ListAdoptions(ctx, f)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	now := uc.now()
	out := make([]Detail, len(list))
	for i := range list {
		out[i] = *newDetail(&list[i], now, uc.loc)
	}
	return out, nil
}
