package adoption

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	"github.com/BruksfildServices01/shelter-adoption/internal/telemetry"
)

type SubmitAdoption struct {
	repo     domain.Repository
	bucket   storage.Bucket
	notifier notify.Notifier
	audit    audit.Sink
	loc      *time.Location
	now      func() time.Time
}

func NewSubmitAdoption(
	repo domain.Repository,
	bucket storage.Bucket,
	notifier notify.Notifier,
	audit audit.Sink,
	loc *time.Location,
) *SubmitAdoption {
	return &SubmitAdoption{
		repo:     repo,
		bucket:   bucket,
		notifier: notifier,
		audit:    audit,
		loc:      loc,
		now:      time.Now,
	}
}

// Execute cierra la adopción. Orden: validaciones sin efectos, luego
// subida de evidencias, luego una sola transacción en el store.
func (uc *SubmitAdoption) Execute(
	ctx context.Context,
	actor auth.Actor,
	requestID uint,
	decl domain.HomeDeclaration,
	evidence []storage.File,
) (*Detail, error) {

	ctx, end := telemetry.StartSpan(ctx, "adoption.submit")
	defer end()

	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}

	if err := decl.Validate(); err != nil {
		return nil, err
	}
	if err := storage.CheckImages(evidence); err != nil {
		return nil, err
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, httperr.FromStore(err, "request_not_found")
	}
	if req.ProfileID != actor.ProfileID {
		return nil, httperr.Forbidden("not_owner")
	}

	if _, err := uc.repo.GetAdoptionByRequest(ctx, req.ID); err == nil {
		return nil, httperr.Conflict("adoption_already_exists")
	} else if !httperr.IsRecordNotFound(err) {
		return nil, httperr.FromStore(err, "")
	}

	if err := adoptionrequest.CanFinalize(adoptionrequest.Status(req.Status)); err != nil {
		return nil, err
	}

	visits, err := uc.repo.ListVisits(ctx, appointment.VisitFilter{RequestID: req.ID})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if !hasPositiveVisit(visits) {
		return nil, httperr.Conflict("positive_visit_required")
	}

	urls, err := storage.UploadWebP(ctx, uc.bucket, evidence, func() string {
		return storage.HomeEvidenceKey(req.ID)
	})
	if err != nil {
		return nil, err
	}

	// fechas en la zona del refugio, la misma que usa el estado derivado
	now := uc.now().In(uc.loc)
	a := domain.Build(req, decl, urls, now)
	followUps := followup.Schedule(now)

	if err := uc.repo.FinalizeAdoption(ctx, a, followUps); err != nil {
		return nil, httperr.FromStore(err, "", "adoption_already_exists")
	}

	uc.notifier.Notify(notify.KindAdoptionFinalized, req.Profile.Email, notify.Data{
		"Name": req.Profile.FirstName,
		"Pet":  req.Pet.Name,
	})

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "adoption_finalized",
		Entity:   "adoption",
		EntityID: &a.ID,
		Metadata: map[string]any{"solicitud_id": req.ID, "mascota_id": req.PetID},
	})

	a.Pet = req.Pet
	return newDetail(a, now, uc.loc), nil
}

// hasPositiveVisit: basta una cita con resultado positivo; las canceladas
// o negativas quedan en el historial.
func hasPositiveVisit(vs []models.VisitAppointment) bool {
	for _, v := range vs {
		if appointment.HasPositiveOutcome(v) {
			return true
		}
	}
	return false
}
