package adoptionrequest

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
)

type DecideRequest struct {
	repo     Repository
	notifier notify.Notifier
	audit    audit.Sink
	now      func() time.Time
}

func NewDecideRequest(repo Repository, notifier notify.Notifier, audit audit.Sink) *DecideRequest {
	return &DecideRequest{repo: repo, notifier: notifier, audit: audit, now: time.Now}
}

func (uc *DecideRequest) Execute(
	ctx context.Context,
	actor auth.Actor,
	requestID uint,
	decision string,
	reason string,
) (*models.AdoptionRequest, error) {

	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, httperr.FromStore(err, "request_not_found")
	}

	now := uc.now()
	if err := domain.Decide(req, domain.Decision(decision), reason, actor.ProfileID, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRequest(ctx, req); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	kind := notify.KindRequestApproved
	if domain.Status(req.Status) == domain.StatusRejected {
		kind = notify.KindRequestRejected
		ReleasePet(ctx, uc.repo, uc.audit, actor.ProfileID, req.PetID, "request_rejected")
		CancelLiveVisits(ctx, uc.repo, uc.audit, actor.ProfileID, req.ID, now)
	}

	uc.notifier.Notify(kind, req.Profile.Email, notify.Data{
		"Name":   req.Profile.FirstName,
		"Pet":    req.Pet.Name,
		"Reason": req.RejectionReason,
	})

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "request_decided",
		Entity:   "adoption_request",
		EntityID: &req.ID,
		Metadata: map[string]any{"estado": req.Status},
	})

	return req, nil
}
