package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/config"
)

var cfg = &config.Config{JWTSecret: "test-secret"}

func engine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		a := Actor(c)
		c.JSON(http.StatusOK, gin.H{"id": a.ProfileID, "role": a.Role})
	})
	r.GET("/", handlers...)
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, id uint, role auth.Role) string {
	t.Helper()
	tok, err := auth.GenerateToken(cfg.JWTSecret, id, role, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func TestAuthMiddleware(t *testing.T) {
	r := engine(AuthMiddleware(cfg))

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header = %d", w.Code)
	}
	if w := get(r, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("basic = %d", w.Code)
	}
	if w := get(r, bearer(t, 7, auth.RoleAdopter)); w.Code != http.StatusOK {
		t.Fatalf("valid = %d %s", w.Code, w.Body.String())
	}
}

func TestOptionalAuth_IgnoresBadToken(t *testing.T) {
	r := engine(OptionalAuth(cfg))

	if w := get(r, "Bearer garbage"); w.Code != http.StatusOK || w.Body.String() != `{"id":0,"role":""}` {
		t.Fatalf("bad token: %d %s", w.Code, w.Body.String())
	}
	if w := get(r, bearer(t, 3, auth.RoleAdopter)); w.Body.String() != `{"id":3,"role":"adoptante"}` {
		t.Fatalf("good token: %s", w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	r := engine(AuthMiddleware(cfg), RequireAdmin())

	if w := get(r, bearer(t, 3, auth.RoleAdopter)); w.Code != http.StatusForbidden {
		t.Fatalf("adopter = %d", w.Code)
	}
	if w := get(r, bearer(t, 1, auth.RoleAdmin)); w.Code != http.StatusOK {
		t.Fatalf("admin = %d", w.Code)
	}
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func TestRateLimit(t *testing.T) {
	deny := &stubLimiter{allow: false}
	if w := get(engine(RateLimit(deny, "login")), ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("deny = %d", w.Code)
	}
	if len(deny.keys) != 1 || deny.keys[0] != "login:192.0.2.1" {
		t.Fatalf("key = %v", deny.keys)
	}

	// si el limitador falla no se bloquea el login
	broken := &stubLimiter{err: errors.New("redis down")}
	if w := get(engine(RateLimit(broken, "login")), ""); w.Code != http.StatusOK {
		t.Fatalf("broken limiter = %d", w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := engine(CORSMiddleware("https://refugio.mx/"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://refugio.mx")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://refugio.mx" {
		t.Fatalf("allowed origin header = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://otro.mx")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin got %q", got)
	}
}
