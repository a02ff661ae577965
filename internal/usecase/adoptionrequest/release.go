package adoptionrequest

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// VisitStore deja a cancelar/rechazar cerrar las citas de la solicitud.
type VisitStore interface {
	ListVisits(ctx context.Context, f appointment.VisitFilter) ([]models.VisitAppointment, error)
	UpdateVisit(ctx context.Context, v *models.VisitAppointment) error
}

// Repository es el de solicitudes más las citas de convivencia.
type Repository interface {
	domain.Repository
	VisitStore
}

// ReleasePet devuelve la mascota a disponible. Es best-effort: un fallo
// se registra y se audita pero no se propaga, la transición de la
// solicitud ya quedó hecha. La reconciliación repara lo que quede.
func ReleasePet(ctx context.Context, store pet.Store, sink audit.Sink, actorID uint, petID uint, cause string) {
	err := store.SetPetStatus(ctx, petID, string(pet.StatusAvailable), true)
	if err == nil {
		return
	}

	log.Printf("pet release failed pet=%d cause=%s error=%v", petID, cause, err)
	sink.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "pet_release_failed",
		Entity:   "pet",
		EntityID: &petID,
		Metadata: map[string]any{"causa": cause, "error": err.Error()},
	})
}

// CancelLiveVisits cancela las citas pendientes/aprobadas sin resultado de
// una solicitud que ya no sigue. Best-effort igual que ReleasePet.
func CancelLiveVisits(ctx context.Context, store VisitStore, sink audit.Sink, actorID, requestID uint, now time.Time) {
	live, err := store.ListVisits(ctx, appointment.VisitFilter{
		RequestID: requestID,
		Statuses:  appointment.LiveStatuses,
	})
	if err != nil {
		log.Printf("visit cleanup failed request=%d error=%v", requestID, err)
		return
	}

	for i := range live {
		v := &live[i]
		if v.OutcomeRecordedAt != nil {
			continue
		}
		if err := appointment.DecideVisit(v, appointment.DecisionCancel, now); err != nil {
			continue
		}
		if err := store.UpdateVisit(ctx, v); err != nil {
			log.Printf("visit cleanup failed visit=%d error=%v", v.ID, err)
			continue
		}
		sink.Dispatch(audit.Event{
			ActorID:  &actorID,
			Action:   "visit_cancelled_with_request",
			Entity:   "visit_appointment",
			EntityID: &v.ID,
		})
	}
}
