package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/internal/service/admin"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	GetDashboard(ctx context.Context) (*admin.Dashboard, error)
	ListUsers(ctx context.Context, limit, offset int) (*admin.UserList, error)
	SetUserRole(ctx context.Context, userID uuid.UUID, role string) (*domain.User, error)
	ApproveTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	PublishTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	VerifyTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
}

type recountService interface {
	RecalculateTopicCounts(ctx context.Context) error
}

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	svc     adminService
	recount recountService
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, recount recountService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, recount: recount, log: logger.With("handler", "admin")}
}

type dashboardResponse struct {
	Topics struct {
		Total     int `json:"total"`
		Published int `json:"published"`
		Pending   int `json:"pending"`
		Verified  int `json:"verified"`
	} `json:"topics"`
	Categories struct {
		Total  int `json:"total"`
		Active int `json:"active"`
		Topics int `json:"topics"`
	} `json:"categories"`
	TotalUsers    int             `json:"totalUsers"`
	PendingReview []topicResponse `json:"pendingReview"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var resp dashboardResponse
	resp.Topics.Total = dash.Topics.TotalTopics
	resp.Topics.Published = dash.Topics.PublishedTopics
	resp.Topics.Pending = dash.Topics.PendingTopics
	resp.Topics.Verified = dash.Topics.VerifiedTopics
	resp.Categories.Total = dash.Categories.TotalCategories
	resp.Categories.Active = dash.Categories.ActiveCategories
	resp.Categories.Topics = dash.Categories.TotalTopicsInCategories
	resp.TotalUsers = dash.TotalUsers
	resp.PendingReview = toTopicResponses(dash.PendingReview)

	writeJSON(w, http.StatusOK, resp)
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	list, err := h.svc.ListUsers(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	users := make([]userResponse, len(list.Users))
	for i, u := range list.Users {
		users[i] = toUserResponse(u)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  users,
		"total": list.Total,
	})
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetUserRole handles PATCH /api/admin/users/{id}/role.
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.SetUserRole(r.Context(), id, req.Role)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// ApproveTopic handles POST /api/admin/topics/{id}/approve.
func (h *AdminHandler) ApproveTopic(w http.ResponseWriter, r *http.Request) {
	h.workflowAction(w, r, h.svc.ApproveTopic)
}

// PublishTopic handles POST /api/admin/topics/{id}/publish.
func (h *AdminHandler) PublishTopic(w http.ResponseWriter, r *http.Request) {
	h.workflowAction(w, r, h.svc.PublishTopic)
}

// VerifyTopic handles POST /api/admin/topics/{id}/verify.
func (h *AdminHandler) VerifyTopic(w http.ResponseWriter, r *http.Request) {
	h.workflowAction(w, r, h.svc.VerifyTopic)
}

func (h *AdminHandler) workflowAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(context.Context, uuid.UUID) (*domain.Topic, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	topic, err := action(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(*topic))
}

// RecountCategories handles POST /api/admin/categories/recount.
func (h *AdminHandler) RecountCategories(w http.ResponseWriter, r *http.Request) {
	if err := h.recount.RecalculateTopicCounts(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
