package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	FromError(c, err)
	return w
}

func TestFromError_StatusByKind(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("invalid_species"), http.StatusBadRequest},
		{NotFound("pet_not_found"), http.StatusNotFound},
		{Conflict("pet_not_available"), http.StatusConflict},
		{Unauthenticated("not_authenticated"), http.StatusUnauthorized},
		{Forbidden("admin_only"), http.StatusForbidden},
		{Upstream("storage_failure", errors.New("s3 down")), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if w := respond(tc.err); w.Code != tc.want {
			t.Errorf("%v: status %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestFromError_UnwrapsAndTranslates(t *testing.T) {
	w := respond(fmt.Errorf("create request: %w", Conflict("pet_not_available")))

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "pet_not_available" {
		t.Fatalf("code = %q", body.Code)
	}
	if body.Message != messages["pet_not_available"] {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestFromError_HidesInternalDetail(t *testing.T) {
	w := respond(errors.New("pq: password authentication failed"))

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "internal_error" || body.Message != messages["internal_error"] {
		t.Fatalf("leaked: %+v", body)
	}
}

func TestMessageFor_UnknownCodeFallsBack(t *testing.T) {
	if got := messageFor("something_new"); got != "something_new" {
		t.Fatalf("got %q", got)
	}
}
