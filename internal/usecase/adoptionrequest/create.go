package adoptionrequest

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type CreateRequest struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateRequest(repo domain.Repository, audit audit.Sink) *CreateRequest {
	return &CreateRequest{repo: repo, audit: audit}
}

func (uc *CreateRequest) Execute(
	ctx context.Context,
	actor auth.Actor,
	petID uint,
	motive string,
) (*models.AdoptionRequest, error) {

	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}

	profile, err := uc.repo.GetProfile(ctx, actor.ProfileID)
	if err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}
	if !profile.Active {
		return nil, httperr.Forbidden("profile_inactive")
	}

	p, err := uc.repo.GetPet(ctx, petID)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	if !pet.IsAvailable(p) {
		return nil, httperr.Conflict("pet_not_available")
	}

	docs, err := uc.repo.ListDocuments(ctx, profile.ID)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if document.AggregateReadiness(docs) == document.ReadinessRejected {
		return nil, httperr.Conflict("documents_rejected")
	}

	req := &models.AdoptionRequest{
		ProfileID: profile.ID,
		PetID:     p.ID,
		Status:    string(domain.StatusPending),
		Motive:    strings.TrimSpace(motive),
	}

	// la reserva de la mascota va en la misma escritura
	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, httperr.FromStore(err, "", "pet_not_available")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "request_created",
		Entity:   "adoption_request",
		EntityID: &req.ID,
		Metadata: map[string]any{"mascota_id": p.ID},
	})

	req.Pet = *p
	req.Pet.Status = string(pet.StatusReserved)
	req.Pet.AvailableForAdoption = false
	return req, nil
}
