// Package reconcile repara el estado de las mascotas cuando una liberación
// best-effort falló. Lo corren el CLI y el endpoint de admin.
package reconcile

import (
	"context"
	"log"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Repository interface {
	ListPets(ctx context.Context, f pet.Filter) ([]models.Pet, error)
	ListRequests(ctx context.Context, f adoptionrequest.Filter) ([]models.AdoptionRequest, error)
	ListAdoptions(ctx context.Context, f adoption.Filter) ([]models.Adoption, error)
	SetPetStatus(ctx context.Context, petID uint, status string, available bool) error
}

type Fix struct {
	PetID     uint   `json:"mascota_id"`
	Name      string `json:"nombre"`
	From      string `json:"estado_actual"`
	To        string `json:"estado_esperado"`
	Available bool   `json:"disponible_adopcion"`
}

// Plan compara cada mascota con lo que dicen solicitudes y adopciones:
// adopción => adoptada; solicitud activa => reservada; nada => disponible.
// Una mascota disponible pausada por el admin se respeta.
func Plan(pets []models.Pet, active []models.AdoptionRequest, adoptions []models.Adoption) []Fix {
	adopted := map[uint]bool{}
	for _, a := range adoptions {
		adopted[a.PetID] = true
	}
	reserved := map[uint]bool{}
	for _, r := range active {
		reserved[r.PetID] = true
	}

	var fixes []Fix
	for _, p := range pets {
		want, available := pet.StatusAvailable, p.AvailableForAdoption
		switch {
		case adopted[p.ID]:
			want, available = pet.StatusAdopted, false
		case reserved[p.ID]:
			want, available = pet.StatusReserved, false
		case pet.Status(p.Status) != pet.StatusAvailable:
			available = true
		}

		if pet.Status(p.Status) == want && p.AvailableForAdoption == available {
			continue
		}
		fixes = append(fixes, Fix{
			PetID:     p.ID,
			Name:      p.Name,
			From:      p.Status,
			To:        string(want),
			Available: available,
		})
	}
	return fixes
}

type Reconcile struct {
	repo  Repository
	audit audit.Sink
}

func New(repo Repository, audit audit.Sink) *Reconcile {
	return &Reconcile{repo: repo, audit: audit}
}

// Execute es la entrada del endpoint de admin.
func (uc *Reconcile) Execute(ctx context.Context, actor auth.Actor, dryRun bool) ([]Fix, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return uc.Run(ctx, &actor.ProfileID, dryRun)
}

// Run no valida actor; actorID nil = sistema (CLI).
func (uc *Reconcile) Run(ctx context.Context, actorID *uint, dryRun bool) ([]Fix, error) {
	pets, err := uc.repo.ListPets(ctx, pet.Filter{})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	active, err := uc.repo.ListRequests(ctx, adoptionrequest.Filter{
		Statuses: adoptionrequest.StatusStrings(adoptionrequest.ActiveStatuses),
	})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	adoptions, err := uc.repo.ListAdoptions(ctx, adoption.Filter{})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	fixes := Plan(pets, active, adoptions)
	if dryRun {
		return fixes, nil
	}

	for _, f := range fixes {
		if err := uc.repo.SetPetStatus(ctx, f.PetID, f.To, f.Available); err != nil {
			return nil, httperr.FromStore(err, "")
		}
		log.Printf("reconcile pet=%d from=%s to=%s available=%v", f.PetID, f.From, f.To, f.Available)

		petID := f.PetID
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "pet_reconciled",
			Entity:   "pet",
			EntityID: &petID,
			Metadata: map[string]any{"de": f.From, "a": f.To},
		})
	}
	return fixes, nil
}
