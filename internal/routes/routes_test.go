package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/config"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/cache"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/payments"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/testutil"
)

const secret = "test-secret"

type server struct {
	t      *testing.T
	engine *gin.Engine
	store  *memstore.Store
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:            secret,
		AppBaseURL:           "http://front.test",
		MinVisitAdvanceHours: 24,
	}

	s := memstore.New()
	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Store:    s,
		Bucket:   storage.NewMemory(),
		Listing:  cache.NewMemoryListing(time.Minute),
		Limiter:  cache.NewMemoryLimiter(2, 2),
		Checkout: payments.Disabled{},
		Notifier: &testutil.Notifier{},
		Audit:    &testutil.Audit{},
		Location: time.UTC,
	})

	return &server{t: t, engine: r, store: s}
}

func (s *server) token(p *models.Profile) string {
	s.t.Helper()
	tok, err := auth.GenerateToken(secret, p.ID, auth.Role(p.Role), time.Now())
	if err != nil {
		s.t.Fatalf("token: %v", err)
	}
	return tok
}

func (s *server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	decode(t, w, &body)
	return body.Code
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	if w := s.do(http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
}

func TestPublicPetList(t *testing.T) {
	s := newServer(t)
	testutil.Pet(t, s.store, "Toby")

	w := s.do(http.MethodGet, "/api/public/pets", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Data  []models.Pet `json:"data"`
		Total int          `json:"total"`
	}
	decode(t, w, &body)
	if body.Total != 1 || body.Data[0].Name != "Toby" {
		t.Fatalf("unexpected list: %+v", body)
	}

	w = s.do(http.MethodGet, "/api/public/pets?especie=dragon", "", nil)
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_species" {
		t.Fatalf("filter: %d %s", w.Code, w.Body.String())
	}
}

func TestAuthGuards(t *testing.T) {
	s := newServer(t)
	ana := testutil.Profile(t, s.store, "ana@example.com", auth.RoleAdopter)

	w := s.do(http.MethodGet, "/api/me", "", nil)
	if w.Code != http.StatusUnauthorized || errorCode(t, w) != "missing_authorization_header" {
		t.Fatalf("no token: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/me", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized || errorCode(t, w) != "invalid_token" {
		t.Fatalf("bad token: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/admin/pets", s.token(ana), nil)
	if w.Code != http.StatusForbidden || errorCode(t, w) != "admin_only" {
		t.Fatalf("adopter on admin: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/me", s.token(ana), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	s := newServer(t)
	ana := testutil.Profile(t, s.store, "ana@example.com", auth.RoleAdopter)

	hash, err := auth.HashPassword("secreto123")
	if err != nil {
		t.Fatal(err)
	}
	ana.PasswordHash = hash
	if err := s.store.UpdateProfile(context.Background(), ana); err != nil {
		t.Fatal(err)
	}

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@example.com", "password": "secreto123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	if body.Token == "" {
		t.Fatal("expected token")
	}

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@example.com", "password": "otra"})
	if w.Code != http.StatusUnauthorized || errorCode(t, w) != "invalid_credentials" {
		t.Fatalf("wrong password: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@example.com", "password": "secreto123"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third attempt = %d, want 429", w.Code)
	}
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	s := newServer(t)
	ana := testutil.Profile(t, s.store, "ana@example.com", auth.RoleAdopter)
	luis := testutil.Profile(t, s.store, "luis@example.com", auth.RoleAdopter)
	admin := testutil.Profile(t, s.store, "admin@example.com", auth.RoleAdmin)
	toby := testutil.Pet(t, s.store, "Toby")

	w := s.do(http.MethodPost, "/api/me/requests", s.token(ana), gin.H{"mascota_id": toby.ID, "motivo": "Tengo patio"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created models.AdoptionRequest
	decode(t, w, &created)

	w = s.do(http.MethodPost, "/api/me/requests", s.token(luis), gin.H{"mascota_id": toby.ID})
	if w.Code != http.StatusConflict || errorCode(t, w) != "pet_not_available" {
		t.Fatalf("second request: %d %s", w.Code, w.Body.String())
	}

	// luis no ve la solicitud de ana
	w = s.do(http.MethodGet, "/api/me/requests/"+itoa(created.ID), s.token(luis), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign request = %d", w.Code)
	}

	w = s.do(http.MethodPatch, "/api/admin/requests/"+itoa(created.ID)+"/decision", s.token(admin),
		gin.H{"decision": "rechazada", "motivo": "Sin espacio"})
	if w.Code != http.StatusOK {
		t.Fatalf("reject: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/public/pets/"+itoa(toby.ID), "", nil)
	var p models.Pet
	decode(t, w, &p)
	if p.Status != "disponible" || !p.AvailableForAdoption {
		t.Fatalf("pet after reject: %s %v", p.Status, p.AvailableForAdoption)
	}

	w = s.do(http.MethodPost, "/api/me/requests", s.token(luis), gin.H{"mascota_id": toby.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("luis after release: %d %s", w.Code, w.Body.String())
	}
}

func TestBadInput(t *testing.T) {
	s := newServer(t)
	admin := testutil.Profile(t, s.store, "admin@example.com", auth.RoleAdmin)

	w := s.do(http.MethodGet, "/api/admin/requests/abc", s.token(admin), nil)
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_id" {
		t.Fatalf("bad id: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/admin/requests/99", s.token(admin), nil)
	if w.Code != http.StatusNotFound || errorCode(t, w) != "request_not_found" {
		t.Fatalf("missing: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/public/donations", "", gin.H{"monto": 1})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "donation_amount_too_low" {
		t.Fatalf("donation: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/public/donations", "", gin.H{"monto": 200})
	if w.Code != http.StatusBadGateway || errorCode(t, w) != "payments_not_configured" {
		t.Fatalf("donation disabled: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/webhooks/mercadopago?type=merchant_order&data.id=5", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("webhook other topic = %d", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
