package profile

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type GetMe struct {
	repo domain.Repository
}

func NewGetMe(repo domain.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, actor auth.Actor) (*models.Profile, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	p, err := uc.repo.GetProfile(ctx, actor.ProfileID)
	if err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}
	return p, nil
}

// UpdateMeInput: email, CURP y rol no se editan desde aquí.
type UpdateMeInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}

type UpdateMe struct {
	repo domain.Repository
}

func NewUpdateMe(repo domain.Repository) *UpdateMe {
	return &UpdateMe{repo: repo}
}

func (uc *UpdateMe) Execute(ctx context.Context, actor auth.Actor, in UpdateMeInput) (*models.Profile, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	p, err := uc.repo.GetProfile(ctx, actor.ProfileID)
	if err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}

	if in.FirstName != nil {
		name := strings.TrimSpace(*in.FirstName)
		if name == "" {
			return nil, httperr.Validation("name_required")
		}
		p.FirstName = name
	}
	if in.LastName != nil {
		p.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}

	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}
	return p, nil
}

// ======================================================
// Admin
// ======================================================

type ListProfiles struct {
	repo domain.Repository
}

func NewListProfiles(repo domain.Repository) *ListProfiles {
	return &ListProfiles{repo: repo}
}

func (uc *ListProfiles) Execute(ctx context.Context, actor auth.Actor, f domain.Filter) ([]models.Profile, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if f.Role != "" && !auth.Role(f.Role).Valid() {
		return nil, httperr.Validation("invalid_role")
	}
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))

	out, err := uc.repo.ListProfiles(ctx, f)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return out, nil
}

type SetActive struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewSetActive(repo domain.Repository, audit audit.Sink) *SetActive {
	return &SetActive{repo: repo, audit: audit}
}

func (uc *SetActive) Execute(ctx context.Context, actor auth.Actor, profileID uint, active bool) (*models.Profile, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if profileID == actor.ProfileID && !active {
		return nil, httperr.Conflict("cannot_deactivate_self")
	}

	p, err := uc.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}

	p.Active = active
	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "profile_active_changed",
		Entity:   "profile",
		EntityID: &p.ID,
		Metadata: map[string]any{"activo": active},
	})
	return p, nil
}
