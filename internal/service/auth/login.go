package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// Login verifies credentials and issues a session token. Unknown email
// and wrong password collapse into the same domain.ErrUnauthorized so
// responses do not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	hash, err := s.creds.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("login %q: %w", email, domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("login %q: %w", email, domain.ErrUnauthorized)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	token, err := s.tm.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
	)

	return &Session{User: *user, Token: token}, nil
}

// Logout ends the session. Sessions are stateless JWTs, so this is an
// idempotent no-op on the server; the client discards the token.
func (s *Service) Logout(ctx context.Context) {
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "user logged out",
			slog.String("user_id", userID.String()),
		)
	}
}
