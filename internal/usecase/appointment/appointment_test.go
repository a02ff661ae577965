package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	"github.com/BruksfildServices01/shelter-adoption/internal/testutil"
	requestuc "github.com/BruksfildServices01/shelter-adoption/internal/usecase/adoptionrequest"
)

var now = time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC)

type env struct {
	store    *memstore.Store
	notifier *testutil.Notifier
	audit    *testutil.Audit

	schedule *ScheduleVisit
	decide   *DecideVisit
	outcome  *RecordOutcome
	list     *ListVisits

	adopter *models.Profile
	admin   *models.Profile
	pet     *models.Pet
	request *models.AdoptionRequest
}

func newEnv(t *testing.T) *env {
	s := memstore.New()
	e := &env{store: s, notifier: &testutil.Notifier{}, audit: &testutil.Audit{}}

	e.schedule = NewScheduleVisit(s, e.audit, 24*time.Hour)
	e.schedule.now = testutil.Clock(now)
	e.decide = NewDecideVisit(s, e.notifier, e.audit, time.UTC)
	e.decide.now = testutil.Clock(now)
	e.outcome = NewRecordOutcome(s, e.notifier, e.audit)
	e.list = NewListVisits(s, time.UTC)

	e.adopter = testutil.Profile(t, s, "ana@example.com", auth.RoleAdopter)
	e.admin = testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin)
	e.pet = testutil.Pet(t, s, "Toby")
	e.request = testutil.ApprovedRequest(t, s, e.adopter.ID, e.pet.ID)
	testutil.ApprovedDocuments(t, s, e.adopter.ID)
	return e
}

func TestScheduleVisit_Rules(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	me := testutil.Actor(e.adopter)

	if _, err := e.schedule.Execute(ctx, me, e.request.ID, now.Add(2*time.Hour), ""); !httperr.IsBusiness(err, "appointment_too_soon") {
		t.Fatalf("expected appointment_too_soon, got %v", err)
	}
	if _, err := e.schedule.Execute(ctx, testutil.Actor(e.admin), e.request.ID, now.Add(48*time.Hour), ""); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("only the owner schedules, got %v", err)
	}

	v, err := e.schedule.Execute(ctx, me, e.request.ID, now.Add(48*time.Hour), "Conocer a Toby")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if v.Status != string(domain.StatusPending) || v.PetID != e.pet.ID {
		t.Fatalf("unexpected visit: %+v", v)
	}

	if _, err := e.schedule.Execute(ctx, me, e.request.ID, now.Add(72*time.Hour), ""); !httperr.IsBusiness(err, "visit_already_scheduled") {
		t.Fatalf("expected visit_already_scheduled, got %v", err)
	}

	// cancelar libera el hueco
	if _, err := e.decide.Execute(ctx, testutil.Actor(e.admin), v.ID, "cancelada"); err != nil {
		t.Fatalf("cancel visit: %v", err)
	}
	if _, err := e.schedule.Execute(ctx, me, e.request.ID, now.Add(72*time.Hour), ""); err != nil {
		t.Fatalf("reschedule after cancel: %v", err)
	}
	if k := e.notifier.Kinds(); len(k) != 1 || k[0] != notify.KindAppointmentCancelled {
		t.Fatalf("unexpected notifications: %v", k)
	}
}

func TestScheduleVisit_RequiresApprovedDocumentsAndRequest(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	other := testutil.Profile(t, e.store, "luis@example.com", auth.RoleAdopter)
	req := testutil.ApprovedRequest(t, e.store, other.ID, testutil.Pet(t, e.store, "Luna").ID)
	if _, err := e.schedule.Execute(ctx, testutil.Actor(other), req.ID, now.Add(48*time.Hour), ""); !httperr.IsBusiness(err, "documents_not_approved") {
		t.Fatalf("expected documents_not_approved, got %v", err)
	}

	e.request.Status = string(adoptionrequest.StatusPending)
	if err := e.store.UpdateRequest(ctx, e.request); err != nil {
		t.Fatal(err)
	}
	if _, err := e.schedule.Execute(ctx, testutil.Actor(e.adopter), e.request.ID, now.Add(48*time.Hour), ""); !httperr.IsBusiness(err, "request_not_approved") {
		t.Fatalf("expected request_not_approved, got %v", err)
	}
}

func (e *env) approvedVisit(t *testing.T) *models.VisitAppointment {
	t.Helper()
	ctx := context.Background()
	v, err := e.schedule.Execute(ctx, testutil.Actor(e.adopter), e.request.ID, now.Add(48*time.Hour), "")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if v, err = e.decide.Execute(ctx, testutil.Actor(e.admin), v.ID, "aprobada"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	return v
}

func TestRecordOutcome_Positive(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	v := e.approvedVisit(t)

	e.outcome.now = testutil.Clock(now.Add(24 * time.Hour))
	if _, err := e.outcome.Execute(ctx, testutil.Actor(e.admin), v.ID, "asistio", "buena_aprobada"); !httperr.IsBusiness(err, "appointment_not_held_yet") {
		t.Fatalf("expected appointment_not_held_yet, got %v", err)
	}

	e.outcome.now = testutil.Clock(now.Add(50 * time.Hour))
	got, err := e.outcome.Execute(ctx, testutil.Actor(e.admin), v.ID, "asistio", "buena_aprobada")
	if err != nil {
		t.Fatalf("outcome: %v", err)
	}
	if !domain.HasPositiveOutcome(*got) {
		t.Fatal("expected positive outcome")
	}

	req, _ := e.store.GetRequest(ctx, e.request.ID)
	if req.Status != string(adoptionrequest.StatusApproved) {
		t.Fatalf("request must stay aprobada, got %s", req.Status)
	}

	if _, err := e.outcome.Execute(ctx, testutil.Actor(e.admin), v.ID, "asistio", "no_apta"); !httperr.IsBusiness(err, "outcome_already_recorded") {
		t.Fatalf("expected outcome_already_recorded, got %v", err)
	}
}

func TestRecordOutcome_NegativeRejectsAndReleases(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	v := e.approvedVisit(t)

	e.outcome.now = testutil.Clock(now.Add(50 * time.Hour))
	if _, err := e.outcome.Execute(ctx, testutil.Actor(e.admin), v.ID, "asistio", "no_apta"); err != nil {
		t.Fatalf("outcome: %v", err)
	}

	req, _ := e.store.GetRequest(ctx, e.request.ID)
	if req.Status != string(adoptionrequest.StatusRejected) || req.RejectionReason != OutcomeRejectionReason {
		t.Fatalf("unexpected request: %s %q", req.Status, req.RejectionReason)
	}
	p, _ := e.store.GetPet(ctx, e.pet.ID)
	if !pet.IsAvailable(p) {
		t.Fatalf("pet must be available, got %s", p.Status)
	}

	kinds := e.notifier.Kinds()
	if kinds[len(kinds)-1] != notify.KindRequestRejected {
		t.Fatalf("expected request_rejected notification, got %v", kinds)
	}

	// el historial de la cita se conserva
	stored, _ := e.store.GetVisit(ctx, v.ID)
	if stored.Interaction == nil || *stored.Interaction != "no_apta" {
		t.Fatalf("outcome not kept: %+v", stored)
	}
}

func TestCancelRequest_ClosesLiveVisit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	v, err := e.schedule.Execute(ctx, testutil.Actor(e.adopter), e.request.ID, now.Add(48*time.Hour), "")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	cancel := requestuc.NewCancelRequest(e.store, e.audit)
	if _, err := cancel.Execute(ctx, testutil.Actor(e.adopter), e.request.ID); err != nil {
		t.Fatalf("cancel request: %v", err)
	}

	stored, _ := e.store.GetVisit(ctx, v.ID)
	if stored.Status != string(domain.StatusCancelled) {
		t.Fatalf("visit must be cancelled with its request, got %s", stored.Status)
	}
	if _, err := e.decide.Execute(ctx, testutil.Actor(e.admin), v.ID, "aprobada"); httperr.KindOf(err) != httperr.KindConflict {
		t.Fatalf("approving a closed visit must conflict, got %v", err)
	}
	if k := e.notifier.Kinds(); len(k) != 0 {
		t.Fatalf("no appointment email expected, got %v", k)
	}
	if !e.audit.Has("visit_cancelled_with_request") {
		t.Fatal("expected visit_cancelled_with_request audit")
	}
}

func TestDecideVisit_RefusesApprovalForDeadRequest(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	v, err := e.schedule.Execute(ctx, testutil.Actor(e.adopter), e.request.ID, now.Add(48*time.Hour), "")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	// la solicitud muere sin pasar por la limpieza de citas
	e.request.Status = string(adoptionrequest.StatusCancelled)
	if err := e.store.UpdateRequest(ctx, e.request); err != nil {
		t.Fatal(err)
	}

	if _, err := e.decide.Execute(ctx, testutil.Actor(e.admin), v.ID, "aprobada"); !httperr.IsBusiness(err, "request_not_approved") {
		t.Fatalf("expected request_not_approved, got %v", err)
	}
	if k := e.notifier.Kinds(); len(k) != 0 {
		t.Fatalf("no email expected, got %v", k)
	}

	// cancelar la cita huérfana sí se permite
	if _, err := e.decide.Execute(ctx, testutil.Actor(e.admin), v.ID, "cancelada"); err != nil {
		t.Fatalf("cancel orphan visit: %v", err)
	}
}

func TestRecordOutcome_DeadRequestWritesNothing(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	v := e.approvedVisit(t)

	e.request.Status = string(adoptionrequest.StatusCancelled)
	if err := e.store.UpdateRequest(ctx, e.request); err != nil {
		t.Fatal(err)
	}

	e.outcome.now = testutil.Clock(now.Add(50 * time.Hour))
	if _, err := e.outcome.Execute(ctx, testutil.Actor(e.admin), v.ID, "asistio", "no_apta"); !httperr.IsBusiness(err, "request_not_approved") {
		t.Fatalf("expected request_not_approved, got %v", err)
	}

	stored, _ := e.store.GetVisit(ctx, v.ID)
	if stored.OutcomeRecordedAt != nil || stored.Interaction != nil {
		t.Fatalf("outcome must not be stored: %+v", stored)
	}
}

func TestListVisits_MonthAndOwnership(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.approvedVisit(t)

	got, err := e.list.Execute(ctx, testutil.Actor(e.admin), Query{Year: 2025, Month: 4})
	if err != nil || len(got) != 1 {
		t.Fatalf("april: %d %v", len(got), err)
	}
	got, _ = e.list.Execute(ctx, testutil.Actor(e.admin), Query{Year: 2025, Month: 5})
	if len(got) != 0 {
		t.Fatalf("may should be empty, got %d", len(got))
	}

	other := testutil.Profile(t, e.store, "luis@example.com", auth.RoleAdopter)
	got, _ = e.list.Execute(ctx, testutil.Actor(other), Query{})
	if len(got) != 0 {
		t.Fatalf("other adopter sees %d visits", len(got))
	}

	if _, err := e.list.Execute(ctx, testutil.Actor(e.admin), Query{Year: 2025, Month: 13}); !httperr.IsBusiness(err, "invalid_month") {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}

func TestVet_AdopterNeedsOwnAdoption(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	schedule := NewScheduleVet(e.store, e.audit, 24*time.Hour)
	schedule.now = testutil.Clock(now)
	decide := NewDecideVet(e.store, e.notifier, e.audit, time.UTC)
	complete := NewCompleteVet(e.store, e.audit)

	in := VetInput{PetID: e.pet.ID, ScheduledAt: now.Add(48 * time.Hour), Reason: "Vacunas"}
	if _, err := schedule.Execute(ctx, testutil.Actor(e.adopter), in); !httperr.IsBusiness(err, "adoption_required") {
		t.Fatalf("expected adoption_required, got %v", err)
	}

	a := &models.Adoption{RequestID: e.request.ID, ProfileID: e.adopter.ID, PetID: e.pet.ID, AdoptedAt: now}
	if err := e.store.FinalizeAdoption(ctx, a, nil); err != nil {
		t.Fatalf("seed adoption: %v", err)
	}
	in.AdoptionID = &a.ID

	other := testutil.Profile(t, e.store, "luis@example.com", auth.RoleAdopter)
	if _, err := schedule.Execute(ctx, testutil.Actor(other), in); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	v, err := schedule.Execute(ctx, testutil.Actor(e.adopter), in)
	if err != nil {
		t.Fatalf("schedule vet: %v", err)
	}

	if _, err := complete.Execute(ctx, testutil.Actor(e.admin), v.ID, "Todo bien"); !httperr.IsBusiness(err, "appointment_not_approved") {
		t.Fatalf("expected appointment_not_approved, got %v", err)
	}
	if _, err := decide.Execute(ctx, testutil.Actor(e.admin), v.ID, "aprobada"); err != nil {
		t.Fatalf("approve vet: %v", err)
	}
	got, err := complete.Execute(ctx, testutil.Actor(e.admin), v.ID, "Todo bien")
	if err != nil || got.VetNotes != "Todo bien" {
		t.Fatalf("complete: %+v %v", got, err)
	}
}
