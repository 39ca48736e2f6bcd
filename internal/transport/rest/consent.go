package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

// visitorCookie identifies anonymous visitors for consent tracking.
const visitorCookie = "hv_visitor"

// consentService defines the minimal interface needed by ConsentHandler.
type consentService interface {
	Get(ctx context.Context, visitorID string) (*domain.ConsentRecord, error)
	Save(ctx context.Context, visitorID string, prefs domain.ConsentPreferences) (*domain.ConsentRecord, error)
}

// ConsentHandler serves the cookie consent endpoints.
type ConsentHandler struct {
	svc consentService
	log *slog.Logger
}

// NewConsentHandler creates a ConsentHandler.
func NewConsentHandler(svc consentService, logger *slog.Logger) *ConsentHandler {
	return &ConsentHandler{svc: svc, log: logger.With("handler", "consent")}
}

type consentResponse struct {
	Necessary   bool       `json:"necessary"`
	Analytics   bool       `json:"analytics"`
	Marketing   bool       `json:"marketing"`
	Functional  bool       `json:"functional"`
	ConsentedAt *time.Time `json:"consentedAt,omitempty"`
}

func toConsentResponse(rec *domain.ConsentRecord) consentResponse {
	resp := consentResponse{
		Necessary:  rec.Preferences.Necessary,
		Analytics:  rec.Preferences.Analytics,
		Marketing:  rec.Preferences.Marketing,
		Functional: rec.Preferences.Functional,
	}
	if !rec.ConsentedAt.IsZero() {
		t := rec.ConsentedAt
		resp.ConsentedAt = &t
	}
	return resp
}

// visitorID reads the visitor cookie, minting one when absent.
func (h *ConsentHandler) visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(visitorCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Get handles GET /api/consent.
func (h *ConsentHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), h.visitorID(w, r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConsentResponse(rec))
}

type consentRequest struct {
	Necessary  bool `json:"necessary"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
	Functional bool `json:"functional"`
}

// Put handles PUT /api/consent.
func (h *ConsentHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req consentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Save(r.Context(), h.visitorID(w, r), domain.ConsentPreferences{
		Necessary:  req.Necessary,
		Analytics:  req.Analytics,
		Marketing:  req.Marketing,
		Functional: req.Functional,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConsentResponse(rec))
}
