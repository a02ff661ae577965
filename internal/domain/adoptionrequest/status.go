package adoptionrequest

import "github.com/BruksfildServices01/shelter-adoption/internal/httperr"

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusApproved  Status = "aprobada"
	StatusRejected  Status = "rechazada"
	StatusCancelled Status = "cancelada"
	StatusAdopted   Status = "adoptada"
)

// ActiveStatuses reservan la mascota.
var ActiveStatuses = []Status{StatusPending, StatusApproved}

func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// Terminal: ya no admite transiciones.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusAdopted
}

func CanCancel(current Status) error {
	if !current.Active() {
		return httperr.Conflict("request_not_cancellable")
	}
	return nil
}

func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.Conflict("request_not_pending")
	}
	return nil
}

// CanScheduleVisit: solo solicitudes aprobadas agendan convivencia.
func CanScheduleVisit(current Status) error {
	if current != StatusApproved {
		return httperr.Conflict("request_not_approved")
	}
	return nil
}

func CanFinalize(current Status) error {
	if current == StatusAdopted {
		return httperr.Conflict("adoption_already_exists")
	}
	if current != StatusApproved {
		return httperr.Conflict("request_not_approved")
	}
	return nil
}

// Decision es la resolución del admin.
type Decision string

const (
	DecisionApprove Decision = "aprobada"
	DecisionReject  Decision = "rechazada"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

func StatusStrings(ss []Status) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
