package adoption

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	"github.com/BruksfildServices01/shelter-adoption/internal/testutil"
)

var now = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func declaration() domain.HomeDeclaration {
	return domain.HomeDeclaration{
		HousingType:          domain.HousingHouse,
		AvailableSpace:       domain.SpaceLarge,
		AcceptsFollowUps:     true,
		AcceptsVetCare:       true,
		AcceptsSterilization: true,
		AcceptsNoAbandonment: true,
	}
}

type env struct {
	store    *memstore.Store
	bucket   *storage.Memory
	notifier *testutil.Notifier
	submit   *SubmitAdoption

	adopter *models.Profile
	pet     *models.Pet
	request *models.AdoptionRequest
}

func newEnv(t *testing.T, i appointment.Interaction) *env {
	s := memstore.New()
	e := &env{store: s, bucket: storage.NewMemory(), notifier: &testutil.Notifier{}}
	e.submit = NewSubmitAdoption(s, e.bucket, e.notifier, &testutil.Audit{}, time.UTC)
	e.submit.now = testutil.Clock(now)

	e.adopter = testutil.Profile(t, s, "ana@example.com", auth.RoleAdopter)
	e.pet = testutil.Pet(t, s, "Toby")
	e.request = testutil.ApprovedRequest(t, s, e.adopter.ID, e.pet.ID)
	testutil.HeldVisit(t, s, e.request, now.Add(-48*time.Hour), appointment.AttendancePresent, i)
	return e
}

func TestSubmit_FinalizesWithFourFollowUps(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, appointment.InteractionGood)
	me := testutil.Actor(e.adopter)

	got, err := e.submit.Execute(ctx, me, e.request.ID, declaration(), []storage.File{testutil.Photo("patio.png")})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(got.FollowUps) != followup.Count() {
		t.Fatalf("expected %d follow-ups, got %d", followup.Count(), len(got.FollowUps))
	}
	for _, f := range got.FollowUps {
		if f.State != followup.StatePending {
			t.Fatalf("fresh follow-up %s should be pendiente, got %s", f.Checkpoint, f.State)
		}
	}
	if got.Status != string(domain.StatusActive) || e.bucket.Len() != 1 {
		t.Fatalf("unexpected adoption %+v objects=%d", got.Adoption, e.bucket.Len())
	}

	req, _ := e.store.GetRequest(ctx, e.request.ID)
	p, _ := e.store.GetPet(ctx, e.pet.ID)
	if req.Status != string(adoptionrequest.StatusAdopted) || p.Status != string(pet.StatusAdopted) || p.AvailableForAdoption {
		t.Fatalf("unexpected final state request=%s pet=%s/%v", req.Status, p.Status, p.AvailableForAdoption)
	}
	if k := e.notifier.Kinds(); len(k) != 1 || k[0] != notify.KindAdoptionFinalized {
		t.Fatalf("unexpected notifications %v", k)
	}

	_, err = e.submit.Execute(ctx, me, e.request.ID, declaration(), []storage.File{testutil.Photo("patio.png")})
	if !httperr.IsBusiness(err, "adoption_already_exists") {
		t.Fatalf("expected adoption_already_exists, got %v", err)
	}
}

func TestSubmit_RequiresPositiveVisit(t *testing.T) {
	e := newEnv(t, appointment.InteractionUnsuitable)

	_, err := e.submit.Execute(context.Background(), testutil.Actor(e.adopter), e.request.ID, declaration(), []storage.File{testutil.Photo("a.png")})
	if !httperr.IsBusiness(err, "positive_visit_required") {
		t.Fatalf("expected positive_visit_required, got %v", err)
	}
	if e.bucket.Len() != 0 {
		t.Fatal("no evidence should be uploaded")
	}
}

func TestSubmit_ValidatesBeforeSideEffects(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, appointment.InteractionGood)
	me := testutil.Actor(e.adopter)

	d := declaration()
	d.AcceptsSterilization = false
	if _, err := e.submit.Execute(ctx, me, e.request.ID, d, []storage.File{testutil.Photo("a.png")}); !httperr.IsBusiness(err, "commitments_required") {
		t.Fatalf("expected commitments_required, got %v", err)
	}
	if _, err := e.submit.Execute(ctx, me, e.request.ID, declaration(), nil); !httperr.IsBusiness(err, "evidence_required") {
		t.Fatalf("expected evidence_required, got %v", err)
	}
	if e.bucket.Len() != 0 {
		t.Fatal("validation failures must not upload")
	}

	other := testutil.Profile(t, e.store, "luis@example.com", auth.RoleAdopter)
	if _, err := e.submit.Execute(ctx, testutil.Actor(other), e.request.ID, declaration(), []storage.File{testutil.Photo("a.png")}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestSubmit_StoreFailureIsUpstream(t *testing.T) {
	e := newEnv(t, appointment.InteractionGood)
	e.store.FailOn("FinalizeAdoption", nil)

	_, err := e.submit.Execute(context.Background(), testutil.Actor(e.adopter), e.request.ID, declaration(), []storage.File{testutil.Photo("a.png")})
	if httperr.KindOf(err) != httperr.KindUpstream {
		t.Fatalf("expected upstream, got %v", err)
	}

	req, _ := e.store.GetRequest(context.Background(), e.request.ID)
	if req.Status != string(adoptionrequest.StatusApproved) {
		t.Fatalf("request must stay aprobada, got %s", req.Status)
	}
}

func TestGetAndList_DeriveFollowUpState(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, appointment.InteractionGood)
	me := testutil.Actor(e.adopter)

	created, err := e.submit.Execute(ctx, me, e.request.ID, declaration(), []storage.File{testutil.Photo("a.png")})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	get := NewGetAdoption(e.store, time.UTC)
	get.now = testutil.Clock(now.AddDate(0, 0, 8))
	got, err := get.Execute(ctx, me, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FollowUps[0].State != followup.StateActive || got.FollowUps[1].State != followup.StatePending {
		t.Fatalf("unexpected states %s %s", got.FollowUps[0].State, got.FollowUps[1].State)
	}

	other := testutil.Profile(t, e.store, "luis@example.com", auth.RoleAdopter)
	if _, err := get.Execute(ctx, testutil.Actor(other), created.ID); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	list := NewListAdoptions(e.store, time.UTC)
	mine, err := list.Execute(ctx, testutil.Actor(other), domain.Filter{})
	if err != nil || len(mine) != 0 {
		t.Fatalf("other adopter list: %d %v", len(mine), err)
	}
}

// 28 feb 21:00 en el refugio es 1 mar 03:00 UTC: el mes se suma en la zona del refugio.
func TestSubmit_FollowUpDatesUseShelterZone(t *testing.T) {
	e := newEnv(t, appointment.InteractionGood)
	shelter := time.FixedZone("CST", -6*60*60)
	e.submit.loc = shelter
	e.submit.now = testutil.Clock(time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC))

	got, err := e.submit.Execute(context.Background(), testutil.Actor(e.adopter), e.request.ID, declaration(), []storage.File{testutil.Photo("a.png")})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := map[string]string{
		string(followup.CheckpointOneWeek):   "2025-03-07",
		string(followup.CheckpointOneMonth):  "2025-03-28",
		string(followup.CheckpointSixMonths): "2025-08-28",
	}
	for _, f := range got.FollowUps {
		day, ok := want[f.Checkpoint]
		if !ok {
			continue
		}
		if got := f.TargetDate.In(shelter).Format("2006-01-02"); got != day {
			t.Errorf("%s target = %s, want %s", f.Checkpoint, got, day)
		}
	}
}
