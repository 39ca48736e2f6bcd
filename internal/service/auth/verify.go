package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/haqqvault/backend/internal/auth"
	"github.com/haqqvault/backend/internal/domain"
)

// VerifyEmail consumes a verification token and marks the account's
// email as verified.
func (s *Service) VerifyEmail(ctx context.Context, rawToken string) (*domain.User, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, domain.NewValidationError("token", "โทเค็นไม่ถูกต้องหรือหมดอายุ")
	}

	record, err := s.tokens.Consume(ctx, auth.HashToken(rawToken), domain.TokenEmailVerify)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("token", "โทเค็นไม่ถูกต้องหรือหมดอายุ")
		}
		return nil, fmt.Errorf("consume token: %w", err)
	}

	user, err := s.users.SetVerified(ctx, record.UserID)
	if err != nil {
		return nil, fmt.Errorf("set verified: %w", err)
	}

	s.log.InfoContext(ctx, "email verified",
		slog.String("user_id", user.ID.String()),
	)

	return user, nil
}

// ResendVerification mints a fresh verification token. Unknown emails
// and already-verified accounts return an empty token without error, so
// the response never reveals account state.
func (s *Service) ResendVerification(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", nil
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "verification requested for unknown email")
			return "", nil
		}
		return "", fmt.Errorf("get user: %w", err)
	}
	if user.IsVerified {
		return "", nil
	}

	raw, err := s.mintToken(ctx, user.ID, domain.TokenEmailVerify, s.opts.VerifyTokenTTL)
	if err != nil {
		return "", fmt.Errorf("mint verification token: %w", err)
	}

	s.log.InfoContext(ctx, "verification token reissued",
		slog.String("user_id", user.ID.String()),
	)

	return raw, nil
}
