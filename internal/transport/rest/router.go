package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/config"
	"github.com/haqqvault/backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Topics     *TopicHandler
	Categories *CategoryHandler
	Evidence   *EvidenceHandler
	Auth       *AuthHandler
	Admin      *AdminHandler
	Consent    *ConsentHandler
	Health     *HealthHandler
}

type sessionValidator interface {
	ValidateSessionToken(token string) (uuid.UUID, string, error)
}

// NewRouter wires all routes with the shared middleware chain. Auth
// endpoints get a tighter per-IP rate budget than the read-mostly
// content endpoints.
func NewRouter(
	cfg *config.Config,
	log *slog.Logger,
	validator sessionValidator,
	rl *middleware.RateLimiter,
	h Handlers,
) http.Handler {
	mux := http.NewServeMux()

	authLimit := func(next http.HandlerFunc) http.Handler {
		if !cfg.RateLimit.Enabled {
			return next
		}
		return rl.Limit(cfg.RateLimit.AuthPerMinute)(next)
	}

	// content
	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("POST /api/topics", h.Topics.Create)
	mux.HandleFunc("GET /api/topics/{slug}", h.Topics.Get)
	mux.HandleFunc("PATCH /api/topics/{id}", h.Topics.Update)
	mux.HandleFunc("DELETE /api/topics/{id}", h.Topics.Delete)
	mux.HandleFunc("GET /api/topics/{id}/evidence", h.Evidence.ListByTopic)
	mux.HandleFunc("GET /api/search", h.Topics.Search)
	mux.HandleFunc("GET /api/featured", h.Topics.Featured)
	mux.HandleFunc("GET /api/popular", h.Topics.Popular)

	mux.HandleFunc("GET /api/categories", h.Categories.List)
	mux.HandleFunc("POST /api/categories", h.Categories.Create)
	mux.HandleFunc("GET /api/categories/{slug}", h.Categories.Get)
	mux.HandleFunc("PATCH /api/categories/{id}", h.Categories.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Categories.Delete)

	mux.HandleFunc("POST /api/evidence", h.Evidence.Create)
	mux.HandleFunc("PATCH /api/evidence/{id}", h.Evidence.Update)
	mux.HandleFunc("DELETE /api/evidence/{id}", h.Evidence.Delete)

	// auth
	mux.Handle("POST /api/auth/register", authLimit(h.Auth.Register))
	mux.Handle("POST /api/auth/login", authLimit(h.Auth.Login))
	mux.Handle("POST /api/auth/logout", authLimit(h.Auth.Logout))
	mux.Handle("POST /api/auth/forgot-password", authLimit(h.Auth.ForgotPassword))
	mux.Handle("POST /api/auth/reset-password", authLimit(h.Auth.ResetPassword))
	mux.Handle("POST /api/auth/change-password", authLimit(h.Auth.ChangePassword))
	mux.Handle("POST /api/auth/verify-email", authLimit(h.Auth.VerifyEmail))
	mux.Handle("POST /api/auth/resend-verification", authLimit(h.Auth.ResendVerification))

	mux.HandleFunc("GET /api/profile", h.Auth.GetProfile)
	mux.HandleFunc("PATCH /api/profile", h.Auth.UpdateProfile)

	// admin
	mux.HandleFunc("GET /api/admin/dashboard", h.Admin.Dashboard)
	mux.HandleFunc("GET /api/admin/users", h.Admin.ListUsers)
	mux.HandleFunc("PATCH /api/admin/users/{id}/role", h.Admin.SetUserRole)
	mux.HandleFunc("POST /api/admin/topics/{id}/approve", h.Admin.ApproveTopic)
	mux.HandleFunc("POST /api/admin/topics/{id}/publish", h.Admin.PublishTopic)
	mux.HandleFunc("POST /api/admin/topics/{id}/verify", h.Admin.VerifyTopic)
	mux.HandleFunc("POST /api/admin/categories/recount", h.Admin.RecountCategories)

	// consent
	mux.HandleFunc("GET /api/consent", h.Consent.Get)
	mux.HandleFunc("PUT /api/consent", h.Consent.Put)

	// probes
	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, rl.Limit(cfg.RateLimit.RequestsPerMinute))
	}
	mws = append(mws, middleware.Auth(validator))

	return middleware.Chain(mws...)(mux)
}
