package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/internal/service/evidence"
)

// evidenceService defines the minimal interface needed by EvidenceHandler.
type evidenceService interface {
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Evidence, error)
	Create(ctx context.Context, input evidence.CreateEvidenceInput) (*domain.Evidence, error)
	Update(ctx context.Context, id uuid.UUID, input evidence.UpdateEvidenceInput) (*domain.Evidence, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EvidenceHandler serves the citation endpoints.
type EvidenceHandler struct {
	svc evidenceService
	log *slog.Logger
}

// NewEvidenceHandler creates an EvidenceHandler.
func NewEvidenceHandler(svc evidenceService, logger *slog.Logger) *EvidenceHandler {
	return &EvidenceHandler{svc: svc, log: logger.With("handler", "evidence")}
}

// ListByTopic handles GET /api/topics/{id}/evidence.
func (h *EvidenceHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	items, err := h.svc.ListByTopic(r.Context(), topicID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": toEvidenceResponses(items)})
}

type createEvidenceRequest struct {
	TopicID         string  `json:"topicId"`
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	TitleArabic     *string `json:"titleArabic"`
	Content         string  `json:"content"`
	ContentArabic   *string `json:"contentArabic"`
	Source          string  `json:"source"`
	SourceReference *string `json:"sourceReference"`
	IsAuthenticated bool    `json:"isAuthenticated"`
}

// Create handles POST /api/evidence.
func (h *EvidenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, _ := uuid.Parse(req.TopicID)

	created, err := h.svc.Create(r.Context(), evidence.CreateEvidenceInput{
		TopicID:         topicID,
		Type:            req.Type,
		Title:           req.Title,
		TitleArabic:     req.TitleArabic,
		Content:         req.Content,
		ContentArabic:   req.ContentArabic,
		Source:          req.Source,
		SourceReference: req.SourceReference,
		IsAuthenticated: req.IsAuthenticated,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEvidenceResponse(*created))
}

type updateEvidenceRequest struct {
	Type            *string `json:"type"`
	Title           *string `json:"title"`
	TitleArabic     *string `json:"titleArabic"`
	Content         *string `json:"content"`
	ContentArabic   *string `json:"contentArabic"`
	Source          *string `json:"source"`
	SourceReference *string `json:"sourceReference"`
	IsAuthenticated *bool   `json:"isAuthenticated"`
	Order           *int    `json:"order"`
}

// Update handles PATCH /api/evidence/{id}.
func (h *EvidenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid evidence id")
		return
	}

	var req updateEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, evidence.UpdateEvidenceInput{
		Type:            req.Type,
		Title:           req.Title,
		TitleArabic:     req.TitleArabic,
		Content:         req.Content,
		ContentArabic:   req.ContentArabic,
		Source:          req.Source,
		SourceReference: req.SourceReference,
		IsAuthenticated: req.IsAuthenticated,
		Order:           req.Order,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEvidenceResponse(*updated))
}

// Delete handles DELETE /api/evidence/{id}.
func (h *EvidenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid evidence id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
