package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
)

type VetInput struct {
	PetID       uint
	AdoptionID  *uint
	ScheduledAt time.Time
	Reason      string
}

// ======================================================
// ScheduleVet
// ======================================================

type ScheduleVet struct {
	repo       domain.Repository
	audit      audit.Sink
	minAdvance time.Duration
	now        func() time.Time
}

func NewScheduleVet(repo domain.Repository, audit audit.Sink, minAdvance time.Duration) *ScheduleVet {
	return &ScheduleVet{repo: repo, audit: audit, minAdvance: minAdvance, now: time.Now}
}

// Execute: el adoptante solo agenda para una mascota que adoptó; el admin
// agenda para cualquiera (revisiones del refugio).
func (uc *ScheduleVet) Execute(ctx context.Context, actor auth.Actor, in VetInput) (*models.VetAppointment, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}

	if err := domain.ValidateSchedule(in.ScheduledAt, uc.now(), uc.minAdvance); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}

	owner := actor.ProfileID
	if in.AdoptionID != nil {
		a, err := uc.repo.GetAdoption(ctx, *in.AdoptionID)
		if err != nil {
			return nil, httperr.FromStore(err, "adoption_not_found")
		}
		if a.PetID != p.ID {
			return nil, httperr.Validation("adoption_pet_mismatch")
		}
		if err := auth.RequireOwnerOrAdmin(actor, a.ProfileID); err != nil {
			return nil, err
		}
		owner = a.ProfileID
	} else if !actor.IsAdmin() {
		return nil, httperr.Validation("adoption_required")
	}

	v := &models.VetAppointment{
		PetID:       p.ID,
		AdoptionID:  in.AdoptionID,
		ProfileID:   owner,
		ScheduledAt: in.ScheduledAt,
		Status:      string(domain.StatusPending),
		Reason:      strings.TrimSpace(in.Reason),
	}

	if err := uc.repo.CreateVetAppointment(ctx, v); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "vet_scheduled",
		Entity:   "vet_appointment",
		EntityID: &v.ID,
	})

	return v, nil
}

// ======================================================
// DecideVet
// ======================================================

type DecideVet struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Sink
	loc      *time.Location
	now      func() time.Time
}

func NewDecideVet(repo domain.Repository, notifier notify.Notifier, audit audit.Sink, loc *time.Location) *DecideVet {
	return &DecideVet{repo: repo, notifier: notifier, audit: audit, loc: loc, now: time.Now}
}

func (uc *DecideVet) Execute(ctx context.Context, actor auth.Actor, id uint, decision string) (*models.VetAppointment, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	v, err := uc.repo.GetVetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "appointment_not_found")
	}

	if err := domain.DecideVet(v, domain.Decision(decision), uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateVetAppointment(ctx, v); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	kind := notify.KindAppointmentApproved
	if domain.Status(v.Status) == domain.StatusCancelled {
		kind = notify.KindAppointmentCancelled
	}
	notifyOwner(ctx, uc.repo, uc.notifier, kind, v.ProfileID, v.PetID, v.ScheduledAt.In(uc.loc))

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "vet_decided",
		Entity:   "vet_appointment",
		EntityID: &v.ID,
		Metadata: map[string]any{"estado": v.Status},
	})

	return v, nil
}

// ======================================================
// CompleteVet
// ======================================================

type CompleteVet struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCompleteVet(repo domain.Repository, audit audit.Sink) *CompleteVet {
	return &CompleteVet{repo: repo, audit: audit}
}

func (uc *CompleteVet) Execute(ctx context.Context, actor auth.Actor, id uint, notes string) (*models.VetAppointment, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, httperr.Validation("vet_notes_required")
	}

	v, err := uc.repo.GetVetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "appointment_not_found")
	}
	if domain.Status(v.Status) != domain.StatusApproved {
		return nil, httperr.Conflict("appointment_not_approved")
	}

	v.VetNotes = notes
	if err := uc.repo.UpdateVetAppointment(ctx, v); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "vet_notes_recorded",
		Entity:   "vet_appointment",
		EntityID: &v.ID,
	})

	return v, nil
}
