package adoptionrequest

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

func Cancel(r *models.AdoptionRequest, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}
	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}

// Decide valida la decisión antes de tocar la solicitud.
func Decide(r *models.AdoptionRequest, d Decision, reason string, by uint, now time.Time) error {
	if !d.Valid() {
		return httperr.Validation("invalid_decision")
	}
	reason = strings.TrimSpace(reason)
	if d == DecisionReject && reason == "" {
		return httperr.Validation("rejection_reason_required")
	}
	if err := CanDecide(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(d)
	r.RejectionReason = reason
	r.DecidedBy = &by
	r.DecidedAt = &now
	return nil
}

// RejectAfterVisit cierra el camino de adopción cuando la convivencia
// no fue positiva; no exige estado pendiente.
func RejectAfterVisit(r *models.AdoptionRequest, reason string, by uint, now time.Time) error {
	if Status(r.Status) != StatusApproved {
		return httperr.Conflict("request_not_approved")
	}
	r.Status = string(StatusRejected)
	r.RejectionReason = reason
	r.DecidedBy = &by
	r.DecidedAt = &now
	return nil
}

func MarkAdopted(r *models.AdoptionRequest) error {
	if err := CanFinalize(Status(r.Status)); err != nil {
		return err
	}
	r.Status = string(StatusAdopted)
	return nil
}
