package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/internal/service/category"
	"github.com/haqqvault/backend/internal/service/topic"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, input category.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// categoryTopicLister lists published topics for the category page.
type categoryTopicLister interface {
	List(ctx context.Context, input topic.ListTopicsInput) (domain.PaginatedResult[domain.Topic], error)
}

// CategoryHandler serves the taxonomy endpoints.
type CategoryHandler struct {
	svc    categoryService
	topics categoryTopicLister
	log    *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, topics categoryTopicLister, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, topics: topics, log: logger.With("handler", "category")}
}

// List handles GET /api/categories. ?all=true includes inactive nodes.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		categories []domain.Category
		err        error
	)
	if r.URL.Query().Get("all") == "true" {
		categories, err = h.svc.List(r.Context())
	} else {
		categories, err = h.svc.ListActive(r.Context())
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": toCategoryResponses(categories)})
}

type categoryPageResponse struct {
	Category categoryResponse        `json:"category"`
	Topics   paginatedTopicsResponse `json:"topics"`
}

// Get handles GET /api/categories/{slug}. The response carries the
// category together with a page of its published topics.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	c, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("perPage"))

	result, err := h.topics.List(r.Context(), topic.ListTopicsInput{
		CategorySlug: slug,
		Sort:         q.Get("sort"),
		Page:         page,
		PerPage:      perPage,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryPageResponse{
		Category: toCategoryResponse(*c),
		Topics: paginatedTopicsResponse{
			Data:    toTopicResponses(result.Data),
			Total:   result.Total,
			Page:    result.Page,
			PerPage: result.PerPage,
		},
	})
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	NameArabic  *string `json:"nameArabic"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), category.CreateCategoryInput{
		Name:        req.Name,
		NameArabic:  req.NameArabic,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(*created))
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	NameArabic  *string `json:"nameArabic"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// Update handles PATCH /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, category.UpdateCategoryInput{
		Name:        req.Name,
		NameArabic:  req.NameArabic,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(*updated))
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
