package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	categorymem "github.com/haqqvault/backend/internal/adapter/memory/category"
	consentmem "github.com/haqqvault/backend/internal/adapter/memory/consent"
	credentialmem "github.com/haqqvault/backend/internal/adapter/memory/credential"
	evidencemem "github.com/haqqvault/backend/internal/adapter/memory/evidence"
	"github.com/haqqvault/backend/internal/adapter/memory/seed"
	tokenmem "github.com/haqqvault/backend/internal/adapter/memory/token"
	topicmem "github.com/haqqvault/backend/internal/adapter/memory/topic"
	usermem "github.com/haqqvault/backend/internal/adapter/memory/user"
	authtoken "github.com/haqqvault/backend/internal/auth"
	"github.com/haqqvault/backend/internal/config"
	adminsvc "github.com/haqqvault/backend/internal/service/admin"
	authsvc "github.com/haqqvault/backend/internal/service/auth"
	categorysvc "github.com/haqqvault/backend/internal/service/category"
	consentsvc "github.com/haqqvault/backend/internal/service/consent"
	evidencesvc "github.com/haqqvault/backend/internal/service/evidence"
	topicsvc "github.com/haqqvault/backend/internal/service/topic"
	"github.com/haqqvault/backend/internal/transport/middleware"
	"github.com/haqqvault/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, seeds the in-memory stores, wires services and transport,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Demo accounts ship with plaintext passwords; hash them once at boot
	// so the credential store only ever holds bcrypt hashes.
	hashes := make(map[string]string)
	for email, password := range seed.Passwords() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.PasswordHashCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", email, err)
		}
		hashes[email] = string(hash)
	}

	latency := cfg.Store.SimulatedLatency
	topics := topicmem.NewRepo(seed.Topics(), latency)
	categories := categorymem.NewRepo(seed.Categories(), latency)
	evidence := evidencemem.NewRepo(seed.Evidence(), latency)
	users := usermem.NewRepo(seed.Users(), latency)
	creds := credentialmem.NewRepo(hashes, latency)
	tokens := tokenmem.NewRepo(latency)
	consents := consentmem.NewRepo(latency)

	tm := authtoken.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	topicService := topicsvc.NewService(logger, topics, categories, evidence)
	categoryService := categorysvc.NewService(logger, categories, topics)

	handlers := rest.Handlers{
		Topics:     rest.NewTopicHandler(topicService, logger),
		Categories: rest.NewCategoryHandler(categoryService, topicService, logger),
		Evidence:   rest.NewEvidenceHandler(evidencesvc.NewService(logger, evidence, topics), logger),
		Auth: rest.NewAuthHandler(authsvc.NewService(logger, users, creds, tokens, tm, authsvc.Options{
			PasswordHashCost:  cfg.Auth.PasswordHashCost,
			MinPasswordLength: cfg.Auth.MinPasswordLength,
			ResetTokenTTL:     cfg.Auth.ResetTokenTTL,
			VerifyTokenTTL:    cfg.Auth.VerifyTokenTTL,
		}), logger),
		Admin:   rest.NewAdminHandler(adminsvc.NewService(logger, topics, categories, users), categoryService, logger),
		Consent: rest.NewConsentHandler(consentsvc.NewService(logger, consents), logger),
		Health:  rest.NewHealthHandler(Version),
	}

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(cfg, logger, tm, rl, handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go runTokenJanitor(ctx, logger, tokens, cfg.Store.TokenCleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type expiredTokenDeleter interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// runTokenJanitor periodically removes expired and consumed one-time tokens
// so the in-memory registry does not grow without bound.
func runTokenJanitor(ctx context.Context, log *slog.Logger, tokens expiredTokenDeleter, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := tokens.DeleteExpired(ctx)
			if err != nil {
				log.Error("token cleanup failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				log.Debug("token cleanup", slog.Int("deleted", n))
			}
		}
	}
}
