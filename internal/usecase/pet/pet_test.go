package pet

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/cache"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/testutil"
)

func TestCreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	admin := testutil.Actor(testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin))
	adopter := testutil.Actor(testutil.Profile(t, s, "ana@example.com", auth.RoleAdopter))

	create := NewCreatePet(s, &testutil.Audit{})
	in := Input{Name: " Toby ", Species: "perro", Sex: "macho", Size: "grande", AgeMonths: 18}

	if _, err := create.Execute(ctx, adopter, in); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := create.Execute(ctx, admin, Input{Name: "X", Species: "dragon"}); !httperr.IsBusiness(err, "invalid_species") {
		t.Fatalf("expected invalid_species, got %v", err)
	}

	p, err := create.Execute(ctx, admin, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "Toby" || !domain.IsAvailable(p) {
		t.Fatalf("unexpected pet %+v", p)
	}

	in.Description = "Muy juguetón"
	got, err := NewUpdatePet(s, &testutil.Audit{}).Execute(ctx, admin, p.ID, in)
	if err != nil || got.Description != "Muy juguetón" {
		t.Fatalf("update: %+v %v", got, err)
	}
}

// reservingStore reserva la mascota justo después de la primera lectura,
// como lo haría una solicitud concurrente.
type reservingStore struct {
	*memstore.Store
	fired bool
}

func (r *reservingStore) GetPet(ctx context.Context, id uint) (*models.Pet, error) {
	p, err := r.Store.GetPet(ctx, id)
	if err == nil && !r.fired {
		r.fired = true
		if err := r.Store.SetPetStatus(ctx, id, string(domain.StatusReserved), false); err != nil {
			return nil, err
		}
	}
	return p, err
}

func TestUpdatePet_KeepsConcurrentReservation(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	admin := testutil.Actor(testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin))
	p := testutil.Pet(t, s, "Toby")

	in := Input{Name: "Toby", Species: "perro", Description: "Ya vacunado"}
	got, err := NewUpdatePet(&reservingStore{Store: s}, &testutil.Audit{}).Execute(ctx, admin, p.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != string(domain.StatusReserved) || got.AvailableForAdoption {
		t.Fatalf("response lost reservation: %s %v", got.Status, got.AvailableForAdoption)
	}

	stored, _ := s.GetPet(ctx, p.ID)
	if stored.Status != string(domain.StatusReserved) || stored.AvailableForAdoption {
		t.Fatalf("store lost reservation: %s %v", stored.Status, stored.AvailableForAdoption)
	}
	if stored.Description != "Ya vacunado" {
		t.Fatalf("description = %q", stored.Description)
	}
}

func TestSetAvailability_OnlyForAvailablePets(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	admin := testutil.Actor(testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin))
	p := testutil.Pet(t, s, "Luna")
	uc := NewSetAvailability(s, &testutil.Audit{})

	got, err := uc.Execute(ctx, admin, p.ID, false)
	if err != nil || got.AvailableForAdoption {
		t.Fatalf("pause: %+v %v", got, err)
	}

	if err := s.SetPetStatus(ctx, p.ID, string(domain.StatusReserved), false); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Execute(ctx, admin, p.ID, true); !httperr.IsBusiness(err, "pet_status_locked") {
		t.Fatalf("expected pet_status_locked, got %v", err)
	}
}

func TestListPublicPets_HidesUnavailableAndCaches(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	testutil.Pet(t, s, "Toby")
	luna := testutil.Pet(t, s, "Luna")
	if err := s.SetPetStatus(ctx, luna.ID, string(domain.StatusReserved), false); err != nil {
		t.Fatal(err)
	}

	listing := cache.NewMemoryListing(time.Minute)
	uc := NewListPublicPets(s, listing)

	got, err := uc.Execute(ctx, domain.Filter{Status: "reservada"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Toby" {
		t.Fatalf("public list must only show available pets, got %+v", got)
	}

	raw, ok := listing.Get(ctx, "||||20|0")
	if !ok || !strings.Contains(string(raw), "Toby") {
		t.Fatalf("expected cached page, got %q %v", raw, ok)
	}

	if _, err := uc.Execute(ctx, domain.Filter{Size: "enorme"}); !httperr.IsBusiness(err, "invalid_size") {
		t.Fatalf("expected invalid_size, got %v", err)
	}
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	admin := testutil.Actor(testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin))
	p := testutil.Pet(t, s, "Toby")
	bucket := storage.NewMemory()
	uc := NewUploadPhoto(s, bucket)

	if _, err := uc.Execute(ctx, admin, p.ID, storage.File{Name: "a.gif", Data: []byte("x")}); !httperr.IsBusiness(err, "file_type_not_allowed") {
		t.Fatalf("expected file_type_not_allowed, got %v", err)
	}

	got, err := uc.Execute(ctx, admin, p.ID, testutil.Photo("toby.png"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasSuffix(got.PhotoURL, ".webp") || bucket.Len() != 1 {
		t.Fatalf("unexpected photo url %q", got.PhotoURL)
	}
}
