package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		from Status
		d    Decision
		want Status
		kind httperr.Kind
	}{
		{StatusPending, DecisionApprove, StatusApproved, ""},
		{StatusPending, DecisionCancel, StatusCancelled, ""},
		{StatusApproved, DecisionCancel, StatusCancelled, ""},
		{StatusApproved, DecisionApprove, StatusApproved, httperr.KindConflict},
		{StatusCancelled, DecisionApprove, StatusCancelled, httperr.KindConflict},
		{StatusCancelled, DecisionCancel, StatusCancelled, httperr.KindConflict},
		{StatusPending, Decision("x"), StatusPending, httperr.KindValidation},
	}

	for _, tc := range cases {
		got, err := Transition(tc.from, tc.d)
		if httperr.KindOf(err) != tc.kind {
			t.Fatalf("%s+%s: expected kind %q, got %v", tc.from, tc.d, tc.kind, err)
		}
		if got != tc.want {
			t.Fatalf("%s+%s: got %s want %s", tc.from, tc.d, got, tc.want)
		}
	}
}

func TestRecordOutcome(t *testing.T) {
	at := time.Date(2025, 5, 10, 11, 0, 0, 0, time.UTC)
	v := &models.VisitAppointment{Status: string(StatusApproved), ScheduledAt: at}

	if err := RecordOutcome(v, AttendancePresent, InteractionGood, 1, at.Add(-time.Hour)); !httperr.IsBusiness(err, "appointment_not_held_yet") {
		t.Fatalf("expected appointment_not_held_yet, got %v", err)
	}
	if err := RecordOutcome(v, Attendance("tal_vez"), InteractionGood, 1, at.Add(time.Hour)); !httperr.IsBusiness(err, "invalid_outcome") {
		t.Fatalf("expected invalid_outcome, got %v", err)
	}

	if err := RecordOutcome(v, AttendancePresent, InteractionGood, 1, at.Add(time.Hour)); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if !HasPositiveOutcome(*v) {
		t.Fatal("expected positive outcome")
	}

	// escritura única
	if err := RecordOutcome(v, AttendancePresent, InteractionUnsuitable, 1, at.Add(2*time.Hour)); !httperr.IsBusiness(err, "outcome_already_recorded") {
		t.Fatalf("expected outcome_already_recorded, got %v", err)
	}
	if *v.Interaction != string(InteractionGood) {
		t.Fatalf("outcome overwritten: %s", *v.Interaction)
	}
}

func TestRecordOutcome_RequiresApproved(t *testing.T) {
	v := &models.VisitAppointment{Status: string(StatusPending)}
	err := RecordOutcome(v, AttendancePresent, InteractionGood, 1, time.Now())
	if !httperr.IsBusiness(err, "appointment_not_approved") {
		t.Fatalf("expected appointment_not_approved, got %v", err)
	}
}

func TestIsPositiveOutcome(t *testing.T) {
	if !IsPositiveOutcome(AttendancePresent, InteractionGood) {
		t.Fatal("asistio+buena_aprobada must be positive")
	}
	if IsPositiveOutcome(AttendancePresent, InteractionUnsuitable) {
		t.Fatal("no_apta must not be positive")
	}
	if IsPositiveOutcome(AttendanceAbsentUnsuitable, InteractionGood) {
		t.Fatal("absence must not be positive")
	}
	if HasPositiveOutcome(models.VisitAppointment{}) {
		t.Fatal("missing outcome must not be positive")
	}
}

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := ValidateSchedule(now.Add(23*time.Hour), now, 24*time.Hour); !httperr.IsBusiness(err, "appointment_too_soon") {
		t.Fatalf("expected appointment_too_soon, got %v", err)
	}
	if err := ValidateSchedule(now.Add(25*time.Hour), now, 24*time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
