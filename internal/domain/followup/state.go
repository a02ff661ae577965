package followup

import (
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/timezone"
)

// State es el estado que ve el cliente; "activo" nunca se guarda.
type State string

const (
	StatePending   State = "pendiente"
	StateActive    State = "activo"
	StateCompleted State = "completado"
)

// Estados persistidos en la columna estado.
const (
	StoredPending   State = "pendiente"
	StoredCompleted State = "completado"
)

// StateAt deriva el estado comparando días calendario en loc.
// Toda respuesta pasa por aquí para que cliente y servidor coincidan.
func StateAt(f models.FollowUp, now time.Time, loc *time.Location) State {
	if f.SubmittedAt != nil {
		return StateCompleted
	}
	if loc == nil {
		loc = time.UTC
	}

	today := timezone.StartOfDay(now.In(loc))
	target := timezone.StartOfDay(f.TargetDate.In(loc))
	if !today.Before(target) {
		return StateActive
	}
	return StatePending
}

// Submit registra la evidencia del adoptante; solo en estado activo.
func Submit(f *models.FollowUp, evidence []byte, comments string, now time.Time, loc *time.Location) error {
	switch StateAt(*f, now, loc) {
	case StateCompleted:
		return httperr.Conflict("follow_up_already_completed")
	case StatePending:
		return httperr.Conflict("follow_up_not_active")
	}
	if len(evidence) == 0 {
		return httperr.Validation("evidence_required")
	}

	f.Evidence = evidence
	f.Comments = comments
	f.SubmittedAt = &now
	f.Status = string(StoredCompleted)
	return nil
}

// Complete lo usa el admin (p. ej. visita domiciliaria); no espera la fecha.
func Complete(f *models.FollowUp, notes string, by uint, now time.Time) error {
	if f.SubmittedAt != nil {
		return httperr.Conflict("follow_up_already_completed")
	}
	if notes != "" {
		f.Comments = notes
	}
	f.SubmittedAt = &now
	f.CompletedBy = &by
	f.Status = string(StoredCompleted)
	return nil
}

// AllCompleted indica si la adopción cerró su ciclo de seguimiento.
func AllCompleted(fs []models.FollowUp) bool {
	if len(fs) < Count() {
		return false
	}
	for _, f := range fs {
		if f.SubmittedAt == nil {
			return false
		}
	}
	return true
}

// View es el seguimiento tal como sale en las respuestas.
type View struct {
	models.FollowUp
	State State `json:"estado"`
}

func Views(fs []models.FollowUp, now time.Time, loc *time.Location) []View {
	out := make([]View, len(fs))
	for i, f := range fs {
		out[i] = View{FollowUp: f, State: StateAt(f, now, loc)}
	}
	return out
}
