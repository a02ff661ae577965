package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
)

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken("secret", 42, RoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	actor, err := ParseToken("secret", tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if actor.ProfileID != 42 || actor.Role != RoleAdmin {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestParseToken_RejectsWrongSecretAndExpired(t *testing.T) {
	tok, _ := GenerateToken("secret", 1, RoleAdopter, time.Now())
	if _, err := ParseToken("other", tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	old, _ := GenerateToken("secret", 1, RoleAdopter, time.Now().Add(-48*time.Hour))
	if _, err := ParseToken("secret", old); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	if err := RequireAdmin(Actor{ProfileID: 1, Role: RoleAdmin}); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if k := httperr.KindOf(RequireAdmin(Actor{ProfileID: 2, Role: RoleAdopter})); k != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %q", k)
	}
	if k := httperr.KindOf(RequireAdmin(Actor{})); k != httperr.KindUnauthenticated {
		t.Fatalf("expected unauthenticated, got %q", k)
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	if err := RequireOwnerOrAdmin(Actor{ProfileID: 7, Role: RoleAdopter}, 7); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	if err := RequireOwnerOrAdmin(Actor{ProfileID: 1, Role: RoleAdmin}, 7); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if k := httperr.KindOf(RequireOwnerOrAdmin(Actor{ProfileID: 8, Role: RoleAdopter}, 7)); k != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %q", k)
	}
}
