package pet

import (
	"testing"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

func TestReserve_OnlyFromAvailable(t *testing.T) {
	p := &models.Pet{Status: string(StatusAvailable), AvailableForAdoption: true}
	if err := Reserve(p); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if p.Status != string(StatusReserved) || p.AvailableForAdoption {
		t.Fatalf("unexpected pet after reserve: %+v", p)
	}

	if err := Reserve(p); httperr.KindOf(err) != httperr.KindConflict {
		t.Fatalf("expected conflict reserving a reserved pet, got %v", err)
	}

	hidden := &models.Pet{Status: string(StatusAvailable), AvailableForAdoption: false}
	if err := Reserve(hidden); !httperr.IsBusiness(err, "pet_not_available") {
		t.Fatalf("expected pet_not_available for unpublished pet, got %v", err)
	}
}

func TestRelease_FromAnyState(t *testing.T) {
	for _, st := range []Status{StatusAvailable, StatusReserved, StatusAdopted} {
		p := &models.Pet{Status: string(st)}
		Release(p)
		if !IsAvailable(p) {
			t.Fatalf("release from %s left pet unavailable: %+v", st, p)
		}
	}
}
