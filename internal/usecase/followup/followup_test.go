package followup

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/testutil"
)

var adoptedAt = time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)

type env struct {
	store    *memstore.Store
	bucket   *storage.Memory
	adopter  *models.Profile
	admin    *models.Profile
	adoption *models.Adoption
}

func newEnv(t *testing.T) *env {
	s := memstore.New()
	e := &env{store: s, bucket: storage.NewMemory()}
	e.adopter = testutil.Profile(t, s, "ana@example.com", auth.RoleAdopter)
	e.admin = testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin)
	p := testutil.Pet(t, s, "Toby")
	r := testutil.ApprovedRequest(t, s, e.adopter.ID, p.ID)

	e.adoption = &models.Adoption{
		RequestID: r.ID,
		ProfileID: e.adopter.ID,
		PetID:     p.ID,
		AdoptedAt: adoptedAt,
		Status:    string(adoption.StatusActive),
	}
	if err := s.FinalizeAdoption(context.Background(), e.adoption, domain.Schedule(adoptedAt)); err != nil {
		t.Fatalf("seed adoption: %v", err)
	}
	return e
}

func TestSubmitEvidence_OnlyWhenActive(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	first := e.adoption.FollowUps[0]

	uc := NewSubmitEvidence(e.store, e.bucket, &testutil.Audit{}, time.UTC)
	uc.now = testutil.Clock(adoptedAt.AddDate(0, 0, 3))

	photos := []storage.File{testutil.Photo("patio.png")}
	if _, err := uc.Execute(ctx, testutil.Actor(e.adopter), first.ID, photos, ""); !httperr.IsBusiness(err, "follow_up_not_active") {
		t.Fatalf("expected follow_up_not_active, got %v", err)
	}
	if e.bucket.Len() != 0 {
		t.Fatal("nothing should be uploaded before the state check passes")
	}

	uc.now = testutil.Clock(adoptedAt.AddDate(0, 0, 7))
	if _, err := uc.Execute(ctx, testutil.Actor(e.admin), first.ID, photos, ""); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("only the owner submits evidence, got %v", err)
	}

	got, err := uc.Execute(ctx, testutil.Actor(e.adopter), first.ID, photos, "Todo bien")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.State != domain.StateCompleted || got.Comments != "Todo bien" {
		t.Fatalf("unexpected view %+v", got)
	}

	if _, err := uc.Execute(ctx, testutil.Actor(e.adopter), first.ID, photos, ""); !httperr.IsBusiness(err, "follow_up_already_completed") {
		t.Fatalf("expected follow_up_already_completed, got %v", err)
	}
}

func TestCompletingAllClosesAdoption(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	uc := NewCompleteFollowUp(e.store, &testutil.Audit{}, time.UTC)
	uc.now = testutil.Clock(adoptedAt.AddDate(1, 0, 0))

	if _, err := uc.Execute(ctx, testutil.Actor(e.adopter), e.adoption.FollowUps[0].ID, ""); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	for i, f := range e.adoption.FollowUps {
		if _, err := uc.Execute(ctx, testutil.Actor(e.admin), f.ID, "Visita domiciliaria"); err != nil {
			t.Fatalf("complete %s: %v", f.Checkpoint, err)
		}
		a, _ := e.store.GetAdoption(ctx, e.adoption.ID)
		last := i == len(e.adoption.FollowUps)-1
		if (a.Status == string(adoption.StatusCompleted)) != last {
			t.Fatalf("after %d completions status is %s", i+1, a.Status)
		}
	}
}

func TestListDue(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	uc := NewListDue(e.store, time.UTC)
	uc.now = testutil.Clock(adoptedAt.AddDate(0, 1, 0))

	due, err := uc.Execute(ctx, testutil.Actor(e.admin))
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due follow-ups, got %d", len(due))
	}
	for _, v := range due {
		if v.State != domain.StateActive {
			t.Fatalf("due follow-up should be activo, got %s", v.State)
		}
	}

	if _, err := uc.Execute(ctx, testutil.Actor(e.adopter)); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestListFollowUps_Ownership(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uc := NewListFollowUps(e.store, time.UTC)

	got, err := uc.Execute(ctx, testutil.Actor(e.adopter), e.adoption.ID)
	if err != nil || len(got) != domain.Count() {
		t.Fatalf("list: %d %v", len(got), err)
	}

	other := testutil.Profile(t, e.store, "luis@example.com", auth.RoleAdopter)
	if _, err := uc.Execute(ctx, testutil.Actor(other), e.adoption.ID); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
