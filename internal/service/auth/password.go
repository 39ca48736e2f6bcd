package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/haqqvault/backend/internal/auth"
	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// ForgotPassword mints a password-reset token for the account, if one
// exists. The returned raw token is empty for unknown emails, but the
// caller must respond identically either way so the endpoint cannot be
// used to probe for accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", nil
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "password reset requested for unknown email")
			return "", nil
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	raw, err := s.mintToken(ctx, user.ID, domain.TokenPasswordReset, s.opts.ResetTokenTTL)
	if err != nil {
		return "", fmt.Errorf("mint reset token: %w", err)
	}

	s.log.InfoContext(ctx, "password reset token issued",
		slog.String("user_id", user.ID.String()),
	)

	return raw, nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if strings.TrimSpace(rawToken) == "" {
		return domain.NewValidationError("token", "โทเค็นไม่ถูกต้องหรือหมดอายุ")
	}
	if len(newPassword) < s.opts.MinPasswordLength {
		return passwordLengthError(s.opts.MinPasswordLength)
	}

	record, err := s.tokens.Consume(ctx, auth.HashToken(rawToken), domain.TokenPasswordReset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("token", "โทเค็นไม่ถูกต้องหรือหมดอายุ")
		}
		return fmt.Errorf("consume token: %w", err)
	}

	user, err := s.users.GetByID(ctx, record.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.opts.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.creds.Set(ctx, user.Email, string(hash)); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	s.log.InfoContext(ctx, "password reset",
		slog.String("user_id", user.ID.String()),
	)

	return nil
}

// ChangePassword replaces the password of the authenticated user after
// re-checking the current one.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if len(newPassword) < s.opts.MinPasswordLength {
		return passwordLengthError(s.opts.MinPasswordLength)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	hash, err := s.creds.Get(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("get credential: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(oldPassword)); err != nil {
		return domain.NewValidationError("oldPassword", "รหัสผ่านเดิมไม่ถูกต้อง")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.opts.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.creds.Set(ctx, user.Email, string(newHash)); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", user.ID.String()),
	)

	return nil
}
