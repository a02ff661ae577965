package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	requestuc "github.com/BruksfildServices01/shelter-adoption/internal/usecase/adoptionrequest"
)

// ======================================================
// ScheduleVisit
// ======================================================

type ScheduleVisit struct {
	repo       domain.Repository
	audit      audit.Sink
	minAdvance time.Duration
	now        func() time.Time
}

func NewScheduleVisit(repo domain.Repository, audit audit.Sink, minAdvance time.Duration) *ScheduleVisit {
	return &ScheduleVisit{repo: repo, audit: audit, minAdvance: minAdvance, now: time.Now}
}

func (uc *ScheduleVisit) Execute(
	ctx context.Context,
	actor auth.Actor,
	requestID uint,
	at time.Time,
	reason string,
) (*models.VisitAppointment, error) {

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, httperr.FromStore(err, "request_not_found")
	}

	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	if actor.ProfileID != req.ProfileID {
		return nil, httperr.Forbidden("not_owner")
	}

	if err := adoptionrequest.CanScheduleVisit(adoptionrequest.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := domain.ValidateSchedule(at, uc.now(), uc.minAdvance); err != nil {
		return nil, err
	}

	docs, err := uc.repo.ListDocuments(ctx, req.ProfileID)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if document.AggregateReadiness(docs) != document.ReadinessApproved {
		return nil, httperr.Conflict("documents_not_approved")
	}

	live, err := uc.repo.ListVisits(ctx, domain.VisitFilter{
		RequestID: req.ID,
		Statuses:  domain.LiveStatuses,
	})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if len(live) > 0 {
		return nil, httperr.Conflict("visit_already_scheduled")
	}

	v := &models.VisitAppointment{
		RequestID:   req.ID,
		ProfileID:   req.ProfileID,
		PetID:       req.PetID,
		ScheduledAt: at,
		Status:      string(domain.StatusPending),
		Reason:      strings.TrimSpace(reason),
	}

	if err := uc.repo.CreateVisit(ctx, v); err != nil {
		return nil, httperr.FromStore(err, "", "visit_already_scheduled")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "visit_scheduled",
		Entity:   "visit_appointment",
		EntityID: &v.ID,
	})

	return v, nil
}

// ======================================================
// DecideVisit
// ======================================================

type DecideVisit struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Sink
	loc      *time.Location
	now      func() time.Time
}

func NewDecideVisit(repo domain.Repository, notifier notify.Notifier, audit audit.Sink, loc *time.Location) *DecideVisit {
	return &DecideVisit{repo: repo, notifier: notifier, audit: audit, loc: loc, now: time.Now}
}

func (uc *DecideVisit) Execute(ctx context.Context, actor auth.Actor, visitID uint, decision string) (*models.VisitAppointment, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	v, err := uc.repo.GetVisit(ctx, visitID)
	if err != nil {
		return nil, httperr.FromStore(err, "appointment_not_found")
	}

	// aprobar solo con la solicitud viva; cancelar se permite siempre
	if domain.Decision(decision) == domain.DecisionApprove {
		req, err := uc.repo.GetRequest(ctx, v.RequestID)
		if err != nil {
			return nil, httperr.FromStore(err, "request_not_found")
		}
		if err := adoptionrequest.CanScheduleVisit(adoptionrequest.Status(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := domain.DecideVisit(v, domain.Decision(decision), uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateVisit(ctx, v); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	kind := notify.KindAppointmentApproved
	if domain.Status(v.Status) == domain.StatusCancelled {
		kind = notify.KindAppointmentCancelled
	}
	notifyOwner(ctx, uc.repo, uc.notifier, kind, v.ProfileID, v.PetID, v.ScheduledAt.In(uc.loc))

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "visit_decided",
		Entity:   "visit_appointment",
		EntityID: &v.ID,
		Metadata: map[string]any{"estado": v.Status},
	})

	return v, nil
}

// notifyOwner resuelve correo y nombre de mascota; si no los encuentra
// no se envía nada.
func notifyOwner(
	ctx context.Context,
	repo domain.Repository,
	n notify.Notifier,
	kind notify.Kind,
	profileID, petID uint,
	when time.Time,
) {
	p, err := repo.GetProfile(ctx, profileID)
	if err != nil {
		return
	}
	data := notify.Data{"Name": p.FirstName, "When": when.Format("02/01/2006 15:04")}
	if pet, err := repo.GetPet(ctx, petID); err == nil {
		data["Pet"] = pet.Name
	}
	n.Notify(kind, p.Email, data)
}

// ======================================================
// RecordOutcome
// ======================================================

// OutcomeRejectionReason queda en la solicitud cuando la convivencia no fue favorable.
const OutcomeRejectionReason = "Resultado de la cita de convivencia no favorable"

type RecordOutcome struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Sink
	now      func() time.Time
}

func NewRecordOutcome(repo domain.Repository, notifier notify.Notifier, audit audit.Sink) *RecordOutcome {
	return &RecordOutcome{repo: repo, notifier: notifier, audit: audit, now: time.Now}
}

func (uc *RecordOutcome) Execute(
	ctx context.Context,
	actor auth.Actor,
	visitID uint,
	attendance string,
	interaction string,
) (*models.VisitAppointment, error) {

	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	v, err := uc.repo.GetVisit(ctx, visitID)
	if err != nil {
		return nil, httperr.FromStore(err, "appointment_not_found")
	}

	req, err := uc.repo.GetRequest(ctx, v.RequestID)
	if err != nil {
		return nil, httperr.FromStore(err, "request_not_found")
	}

	now := uc.now()
	if err := domain.RecordOutcome(v, domain.Attendance(attendance), domain.Interaction(interaction), actor.ProfileID, now); err != nil {
		return nil, err
	}
	// se valida antes de escribir para no dejar un resultado huérfano
	if adoptionrequest.Status(req.Status) != adoptionrequest.StatusApproved {
		return nil, httperr.Conflict("request_not_approved")
	}

	if err := uc.repo.UpdateVisit(ctx, v); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "visit_outcome_recorded",
		Entity:   "visit_appointment",
		EntityID: &v.ID,
		Metadata: map[string]any{"asistencia": attendance, "interaccion": interaction},
	})

	if domain.HasPositiveOutcome(*v) {
		return v, nil
	}

	if err := uc.rejectRequest(ctx, actor, req, now); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *RecordOutcome) rejectRequest(ctx context.Context, actor auth.Actor, req *models.AdoptionRequest, now time.Time) error {
	if err := adoptionrequest.RejectAfterVisit(req, OutcomeRejectionReason, actor.ProfileID, now); err != nil {
		return err
	}

	writeErr := uc.repo.UpdateRequest(ctx, req)
	requestuc.ReleasePet(ctx, uc.repo, uc.audit, actor.ProfileID, req.PetID, "visit_outcome_negative")
	if writeErr != nil {
		return httperr.FromStore(writeErr, "")
	}

	uc.notifier.Notify(notify.KindRequestRejected, req.Profile.Email, notify.Data{
		"Name":   req.Profile.FirstName,
		"Pet":    req.Pet.Name,
		"Reason": req.RejectionReason,
	})
	return nil
}
