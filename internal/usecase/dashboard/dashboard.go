package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/timezone"
)

type Repository interface {
	CountPetsByStatus(ctx context.Context) (map[string]int64, error)
	CountRequestsByStatus(ctx context.Context) (map[string]int64, error)
	CountDocumentsByStatus(ctx context.Context) (map[string]int64, error)
	SumDonations(ctx context.Context, status string) (float64, int64, error)

	ListFollowUps(ctx context.Context, f followup.Filter) ([]models.FollowUp, error)
	ListDocuments(ctx context.Context, profileID uint) ([]models.Document, error)
	ListRequests(ctx context.Context, f adoptionrequest.Filter) ([]models.AdoptionRequest, error)
	ListAdoptions(ctx context.Context, f adoption.Filter) ([]models.Adoption, error)
}

type AdminSummary struct {
	Pets          map[string]int64 `json:"mascotas"`
	Requests      map[string]int64 `json:"solicitudes"`
	Documents     map[string]int64 `json:"documentos"`
	DueFollowUps  int              `json:"seguimientos_vencidos"`
	DonatedAmount float64          `json:"monto_donado"`
	Donations     int64            `json:"donaciones_aprobadas"`
}

type AdminOverview struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewAdminOverview(repo Repository, loc *time.Location) *AdminOverview {
	return &AdminOverview{repo: repo, loc: loc, now: time.Now}
}

func (uc *AdminOverview) Execute(ctx context.Context, actor auth.Actor) (*AdminSummary, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var out AdminSummary
	var err error

	if out.Pets, err = uc.repo.CountPetsByStatus(ctx); err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if out.Requests, err = uc.repo.CountRequestsByStatus(ctx); err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if out.Documents, err = uc.repo.CountDocumentsByStatus(ctx); err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if out.DonatedAmount, out.Donations, err = uc.repo.SumDonations(ctx, string(donation.StatusApproved)); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	tomorrow := timezone.StartOfDay(uc.now().In(uc.loc)).AddDate(0, 0, 1)
	due, err := uc.repo.ListFollowUps(ctx, followup.Filter{OnlyOpen: true, DueBefore: &tomorrow})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	out.DueFollowUps = len(due)

	return &out, nil
}

// AdopterSummary es el tablero del adoptante: qué le falta para avanzar.
type AdopterSummary struct {
	Readiness       document.Readiness       `json:"estado_documentos"`
	MissingDocs     []document.Type          `json:"documentos_faltantes"`
	ActiveRequests  []models.AdoptionRequest `json:"solicitudes_activas"`
	Adoptions       int                      `json:"adopciones"`
	PendingFollowUp []followup.View          `json:"seguimientos_abiertos"`
}

type AdopterOverview struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewAdopterOverview(repo Repository, loc *time.Location) *AdopterOverview {
	return &AdopterOverview{repo: repo, loc: loc, now: time.Now}
}

func (uc *AdopterOverview) Execute(ctx context.Context, actor auth.Actor) (*AdopterSummary, error) {
	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}

	docs, err := uc.repo.ListDocuments(ctx, actor.ProfileID)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	reqs, err := uc.repo.ListRequests(ctx, adoptionrequest.Filter{
		ProfileID: actor.ProfileID,
		Statuses:  adoptionrequest.StatusStrings(adoptionrequest.ActiveStatuses),
	})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	adoptions, err := uc.repo.ListAdoptions(ctx, adoption.Filter{ProfileID: actor.ProfileID})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	open, err := uc.repo.ListFollowUps(ctx, followup.Filter{ProfileID: actor.ProfileID, OnlyOpen: true})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}

	if reqs == nil {
		reqs = []models.AdoptionRequest{}
	}
	return &AdopterSummary{
		Readiness:       document.AggregateReadiness(docs),
		MissingDocs:     document.MissingTypes(docs),
		ActiveRequests:  reqs,
		Adoptions:       len(adoptions),
		PendingFollowUp: followup.Views(open, uc.now(), uc.loc),
	}, nil
}
