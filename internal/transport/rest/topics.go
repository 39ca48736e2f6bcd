package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	List(ctx context.Context, input topic.ListTopicsInput) (domain.PaginatedResult[domain.Topic], error)
	GetBySlug(ctx context.Context, slug string) (*topic.TopicPage, error)
	Search(ctx context.Context, query string) ([]domain.Topic, error)
	Featured(ctx context.Context, limit int) ([]domain.Topic, error)
	Popular(ctx context.Context, limit int) ([]domain.Topic, error)
	Create(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	Update(ctx context.Context, id uuid.UUID, input topic.UpdateTopicInput) (*domain.Topic, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TopicHandler serves the topic catalog endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("perPage"))

	result, err := h.svc.List(r.Context(), topic.ListTopicsInput{
		Query:        q.Get("q"),
		CategorySlug: q.Get("category"),
		Severity:     q.Get("severity"),
		Sort:         q.Get("sort"),
		Page:         page,
		PerPage:      perPage,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, paginatedTopicsResponse{
		Data:    toTopicResponses(result.Data),
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

type topicPageResponse struct {
	Topic    topicResponse      `json:"topic"`
	Evidence []evidenceResponse `json:"evidence"`
}

// Get handles GET /api/topics/{slug}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, topicPageResponse{
		Topic:    toTopicResponse(page.Topic),
		Evidence: toEvidenceResponses(page.Evidence),
	})
}

// Search handles GET /api/search.
func (h *TopicHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  toTopicResponses(results),
		"total": len(results),
	})
}

// Featured handles GET /api/featured.
func (h *TopicHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	topics, err := h.svc.Featured(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": toTopicResponses(topics)})
}

// Popular handles GET /api/popular.
func (h *TopicHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	topics, err := h.svc.Popular(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": toTopicResponses(topics)})
}

type createTopicRequest struct {
	Title               string   `json:"title"`
	TitleArabic         *string  `json:"titleArabic"`
	Claim               string   `json:"claim"`
	ShortAnswer         string   `json:"shortAnswer"`
	DetailedExplanation string   `json:"detailedExplanation"`
	CategoryID          string   `json:"categoryId"`
	SeverityLevel       string   `json:"severityLevel"`
	Tags                []string `json:"tags"`
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	categoryID, _ := uuid.Parse(req.CategoryID)

	created, err := h.svc.Create(r.Context(), topic.CreateTopicInput{
		Title:               req.Title,
		TitleArabic:         req.TitleArabic,
		Claim:               req.Claim,
		ShortAnswer:         req.ShortAnswer,
		DetailedExplanation: req.DetailedExplanation,
		CategoryID:          categoryID,
		SeverityLevel:       req.SeverityLevel,
		Tags:                req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(*created))
}

type updateTopicRequest struct {
	Title               *string  `json:"title"`
	TitleArabic         *string  `json:"titleArabic"`
	Claim               *string  `json:"claim"`
	ShortAnswer         *string  `json:"shortAnswer"`
	DetailedExplanation *string  `json:"detailedExplanation"`
	CategoryID          *string  `json:"categoryId"`
	SeverityLevel       *string  `json:"severityLevel"`
	Tags                []string `json:"tags"`
	Status              *string  `json:"status"`
	IsVerified          *bool    `json:"isVerified"`
}

// Update handles PATCH /api/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := topic.UpdateTopicInput{
		Title:               req.Title,
		TitleArabic:         req.TitleArabic,
		Claim:               req.Claim,
		ShortAnswer:         req.ShortAnswer,
		DetailedExplanation: req.DetailedExplanation,
		SeverityLevel:       req.SeverityLevel,
		Tags:                req.Tags,
		Status:              req.Status,
		IsVerified:          req.IsVerified,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		input.CategoryID = &categoryID
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(*updated))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
