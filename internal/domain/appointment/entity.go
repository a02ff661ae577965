package appointment

import (
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica la decisión del admin sobre el estado y devuelve
// el estado nuevo. Lo usan ambas variantes de cita.
func Transition(current Status, d Decision) (Status, error) {
	switch d {
	case DecisionApprove:
		if err := CanApprove(current); err != nil {
			return current, err
		}
		return StatusApproved, nil
	case DecisionCancel:
		if err := CanCancel(current); err != nil {
			return current, err
		}
		return StatusCancelled, nil
	}
	return current, httperr.Validation("invalid_decision")
}

func DecideVisit(v *models.VisitAppointment, d Decision, now time.Time) error {
	next, err := Transition(Status(v.Status), d)
	if err != nil {
		return err
	}
	if v.OutcomeRecordedAt != nil {
		return httperr.Conflict("outcome_already_recorded")
	}
	v.Status = string(next)
	stamp(next, now, &v.ApprovedAt, &v.CancelledAt)
	return nil
}

func DecideVet(v *models.VetAppointment, d Decision, now time.Time) error {
	next, err := Transition(Status(v.Status), d)
	if err != nil {
		return err
	}
	v.Status = string(next)
	stamp(next, now, &v.ApprovedAt, &v.CancelledAt)
	return nil
}

func stamp(s Status, now time.Time, approved, cancelled **time.Time) {
	switch s {
	case StatusApproved:
		*approved = &now
	case StatusCancelled:
		*cancelled = &now
	}
}

// RecordOutcome es de escritura única: solo citas aprobadas cuya hora ya pasó.
func RecordOutcome(v *models.VisitAppointment, a Attendance, i Interaction, by uint, now time.Time) error {
	if !a.Valid() || !i.Valid() {
		return httperr.Validation("invalid_outcome")
	}
	if v.OutcomeRecordedAt != nil {
		return httperr.Conflict("outcome_already_recorded")
	}
	if Status(v.Status) != StatusApproved {
		return httperr.Conflict("appointment_not_approved")
	}
	if now.Before(v.ScheduledAt) {
		return httperr.Conflict("appointment_not_held_yet")
	}

	att, inter := string(a), string(i)
	v.Attendance = &att
	v.Interaction = &inter
	v.OutcomeRecordedBy = &by
	v.OutcomeRecordedAt = &now
	return nil
}

// HasPositiveOutcome lee el resultado guardado de una cita.
func HasPositiveOutcome(v models.VisitAppointment) bool {
	if v.Attendance == nil || v.Interaction == nil {
		return false
	}
	return IsPositiveOutcome(Attendance(*v.Attendance), Interaction(*v.Interaction))
}

// ValidateSchedule: fecha futura con la anticipación mínima.
func ValidateSchedule(at, now time.Time, minAdvance time.Duration) error {
	if at.IsZero() {
		return httperr.Validation("invalid_datetime")
	}
	if at.Before(now.Add(minAdvance)) {
		return httperr.Validation("appointment_too_soon")
	}
	return nil
}
