package adoptionrequest

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type CancelRequest struct {
	repo  Repository
	audit audit.Sink
	now   func() time.Time
}

func NewCancelRequest(repo Repository, audit audit.Sink) *CancelRequest {
	return &CancelRequest{repo: repo, audit: audit, now: time.Now}
}

// Execute cancela, libera la mascota y cierra las citas vivas. La liberación
// corre aunque la escritura de la solicitud falle; ese fallo sí se devuelve.
func (uc *CancelRequest) Execute(ctx context.Context, actor auth.Actor, requestID uint) (*models.AdoptionRequest, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, httperr.FromStore(err, "request_not_found")
	}

	if err := auth.RequireOwnerOrAdmin(actor, req.ProfileID); err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Cancel(req, now); err != nil {
		return nil, err
	}

	writeErr := uc.repo.UpdateRequest(ctx, req)

	ReleasePet(ctx, uc.repo, uc.audit, actor.ProfileID, req.PetID, "request_cancelled")

	if writeErr != nil {
		return nil, httperr.FromStore(writeErr, "")
	}
	CancelLiveVisits(ctx, uc.repo, uc.audit, actor.ProfileID, req.ID, now)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "request_cancelled",
		Entity:   "adoption_request",
		EntityID: &req.ID,
	})

	return req, nil
}
