package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	SetVerified(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type credentialRepo interface {
	Get(ctx context.Context, email string) (string, error)
	Set(ctx context.Context, email, hash string) error
}

type tokenRegistry interface {
	Create(ctx context.Context, t domain.AuthToken) error
	Consume(ctx context.Context, hash string, purpose domain.TokenPurpose) (*domain.AuthToken, error)
}

type tokenManager interface {
	GenerateSessionToken(userID uuid.UUID, role string) (string, error)
	GenerateOpaqueToken() (raw string, hash string, err error)
}

// Options carries the auth policy knobs from configuration.
type Options struct {
	PasswordHashCost  int
	MinPasswordLength int
	ResetTokenTTL     time.Duration
	VerifyTokenTTL    time.Duration
}

// Service implements registration, login and the password/verification
// flows. Sessions are stateless JWTs; reset and verification tokens are
// single-use records in the token registry.
type Service struct {
	users  userRepo
	creds  credentialRepo
	tokens tokenRegistry
	tm     tokenManager
	opts   Options
	log    *slog.Logger
}

// NewService creates a new Auth service.
func NewService(
	log *slog.Logger,
	users userRepo,
	creds credentialRepo,
	tokens tokenRegistry,
	tm tokenManager,
	opts Options,
) *Service {
	return &Service{
		users:  users,
		creds:  creds,
		tokens: tokens,
		tm:     tm,
		opts:   opts,
		log:    log.With("service", "auth"),
	}
}

// Session is the result of a successful login or registration.
type Session struct {
	User  domain.User
	Token string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
