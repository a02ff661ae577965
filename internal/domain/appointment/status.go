package appointment

import "github.com/BruksfildServices01/shelter-adoption/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Status lo comparten la cita de convivencia y la veterinaria.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusApproved  Status = "aprobada"
	StatusCancelled Status = "cancelada"
)

var LiveStatuses = []string{string(StatusPending), string(StatusApproved)}

func (s Status) Live() bool {
	return s == StatusPending || s == StatusApproved
}

// ===============================
// Validations
// ===============================

func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.Conflict("appointment_not_pending")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.Live() {
		return httperr.Conflict("appointment_not_cancellable")
	}
	return nil
}

// Decision del admin sobre una cita.
type Decision string

const (
	DecisionApprove Decision = "aprobada"
	DecisionCancel  Decision = "cancelada"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionCancel
}

// ===============================
// Visit outcome
// ===============================

type Attendance string

const (
	AttendancePresent          Attendance = "asistio"
	AttendanceAbsentUnsuitable Attendance = "no_asistio_no_apto"
)

func (a Attendance) Valid() bool {
	return a == AttendancePresent || a == AttendanceAbsentUnsuitable
}

type Interaction string

const (
	InteractionGood       Interaction = "buena_aprobada"
	InteractionUnsuitable Interaction = "no_apta"
)

func (i Interaction) Valid() bool {
	return i == InteractionGood || i == InteractionUnsuitable
}

// IsPositiveOutcome es la única combinación que habilita la adopción.
func IsPositiveOutcome(a Attendance, i Interaction) bool {
	return a == AttendancePresent && i == InteractionGood
}
