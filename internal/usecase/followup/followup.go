package followup

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/timezone"
)

// ======================================================
// Listados
// ======================================================

type ListFollowUps struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListFollowUps(repo domain.Repository, loc *time.Location) *ListFollowUps {
	return &ListFollowUps{repo: repo, loc: loc, now: time.Now}
}

func (uc *ListFollowUps) Execute(ctx context.Context, actor auth.Actor, adoptionID uint) ([]domain.View, error) {
	a, err := uc.repo.GetAdoption(ctx, adoptionID)
	if err != nil {
		return nil, httperr.FromStore(err, "adoption_not_found")
	}
	if err := auth.RequireOwnerOrAdmin(actor, a.ProfileID); err != nil {
		return nil, err
	}

	fs, err := uc.repo.ListFollowUps(ctx, domain.Filter{AdoptionID: a.ID})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return domain.Views(fs, uc.now(), uc.loc), nil
}

// ListDue devuelve al admin los seguimientos abiertos cuya fecha ya llegó.
type ListDue struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListDue(repo domain.Repository, loc *time.Location) *ListDue {
	return &ListDue{repo: repo, loc: loc, now: time.Now}
}

func (uc *ListDue) Execute(ctx context.Context, actor auth.Actor) ([]domain.View, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return uc.Run(ctx)
}

// Run no valida actor; lo usa el CLI.
func (uc *ListDue) Run(ctx context.Context) ([]domain.View, error) {
	now := uc.now()
	tomorrow := timezone.StartOfDay(now.In(uc.loc)).AddDate(0, 0, 1)

	fs, err := uc.repo.ListFollowUps(ctx, domain.Filter{OnlyOpen: true, DueBefore: &tomorrow})
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return domain.Views(fs, now, uc.loc), nil
}

// ======================================================
// SubmitEvidence
// ======================================================

type SubmitEvidence struct {
	repo   domain.Repository
	bucket storage.Bucket
	audit  audit.Sink
	loc    *time.Location
	now    func() time.Time
}

func NewSubmitEvidence(repo domain.Repository, bucket storage.Bucket, audit audit.Sink, loc *time.Location) *SubmitEvidence {
	return &SubmitEvidence{repo: repo, bucket: bucket, audit: audit, loc: loc, now: time.Now}
}

func (uc *SubmitEvidence) Execute(
	ctx context.Context,
	actor auth.Actor,
	followUpID uint,
	files []storage.File,
	comments string,
) (*domain.View, error) {

	f, err := uc.repo.GetFollowUp(ctx, followUpID)
	if err != nil {
		return nil, httperr.FromStore(err, "follow_up_not_found")
	}
	a, err := uc.repo.GetAdoption(ctx, f.AdoptionID)
	if err != nil {
		return nil, httperr.FromStore(err, "adoption_not_found")
	}

	if actor.ProfileID == 0 {
		return nil, httperr.Unauthenticated("not_authenticated")
	}
	if actor.ProfileID != a.ProfileID {
		return nil, httperr.Forbidden("not_owner")
	}

	now := uc.now()

	// el estado se revisa antes de subir nada
	switch domain.StateAt(*f, now, uc.loc) {
	case domain.StateCompleted:
		return nil, httperr.Conflict("follow_up_already_completed")
	case domain.StatePending:
		return nil, httperr.Conflict("follow_up_not_active")
	}

	urls, err := storage.UploadWebP(ctx, uc.bucket, files, func() string {
		return storage.FollowUpEvidenceKey(f.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := domain.Submit(f, urls, strings.TrimSpace(comments), now, uc.loc); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateFollowUp(ctx, f); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "follow_up_submitted",
		Entity:   "follow_up",
		EntityID: &f.ID,
		Metadata: map[string]any{"etapa": f.Checkpoint},
	})

	if err := completeAdoptionIfDone(ctx, uc.repo, a); err != nil {
		return nil, err
	}

	return &domain.View{FollowUp: *f, State: domain.StateAt(*f, now, uc.loc)}, nil
}

// ======================================================
// CompleteFollowUp
// ======================================================

type CompleteFollowUp struct {
	repo  domain.Repository
	audit audit.Sink
	loc   *time.Location
	now   func() time.Time
}

func NewCompleteFollowUp(repo domain.Repository, audit audit.Sink, loc *time.Location) *CompleteFollowUp {
	return &CompleteFollowUp{repo: repo, audit: audit, loc: loc, now: time.Now}
}

func (uc *CompleteFollowUp) Execute(ctx context.Context, actor auth.Actor, followUpID uint, notes string) (*domain.View, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	f, err := uc.repo.GetFollowUp(ctx, followUpID)
	if err != nil {
		return nil, httperr.FromStore(err, "follow_up_not_found")
	}

	now := uc.now()
	if err := domain.Complete(f, strings.TrimSpace(notes), actor.ProfileID, now); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateFollowUp(ctx, f); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "follow_up_completed",
		Entity:   "follow_up",
		EntityID: &f.ID,
	})

	a, err := uc.repo.GetAdoption(ctx, f.AdoptionID)
	if err != nil {
		return nil, httperr.FromStore(err, "adoption_not_found")
	}
	if err := completeAdoptionIfDone(ctx, uc.repo, a); err != nil {
		return nil, err
	}

	return &domain.View{FollowUp: *f, State: domain.StateAt(*f, now, uc.loc)}, nil
}

func completeAdoptionIfDone(ctx context.Context, repo domain.Repository, a *models.Adoption) error {
	if adoption.Status(a.Status) == adoption.StatusCompleted {
		return nil
	}

	fs, err := repo.ListFollowUps(ctx, domain.Filter{AdoptionID: a.ID})
	if err != nil {
		return httperr.FromStore(err, "")
	}
	if !domain.AllCompleted(fs) {
		return nil
	}

	a.Status = string(adoption.StatusCompleted)
	if err := repo.UpdateAdoption(ctx, a); err != nil {
		return httperr.FromStore(err, "")
	}
	return nil
}
