package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/pkg/ctxutil"
)

type stubValidator struct {
	userID uuid.UUID
	role   string
	err    error
}

func (s *stubValidator) ValidateSessionToken(string) (uuid.UUID, string, error) {
	return s.userID, s.role, s.err
}

func TestAuth_AnonymousPassthrough(t *testing.T) {
	handler := Auth(&stubValidator{err: errors.New("should not be called")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				t.Error("anonymous request must carry no user ID")
			}
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	wantID := uuid.New()
	handler := Auth(&stubValidator{userID: wantID, role: "scholar"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok || gotID != wantID {
				t.Errorf("user ID = %s, want %s", gotID, wantID)
			}
			if role := ctxutil.RoleFromCtx(r.Context()); role != "scholar" {
				t.Errorf("role = %q, want scholar", role)
			}
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(&stubValidator{err: errors.New("expired")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run on invalid token")
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_MalformedHeaderIsAnonymous(t *testing.T) {
	handler := Auth(&stubValidator{err: errors.New("should not be called")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
