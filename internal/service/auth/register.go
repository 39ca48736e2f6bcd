package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/haqqvault/backend/internal/domain"
)

// RegisterResult is a new session plus the raw email-verification token.
// There is no mail channel, so the token travels back to the caller and
// is fed straight into the verification endpoint.
type RegisterResult struct {
	Session
	VerificationToken string
}

// Register creates an account and signs the user in. New accounts start
// with the member role and an unverified email.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if err := input.Validate(s.opts.MinPasswordLength); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.opts.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email: email,
		Name:  strings.TrimSpace(input.Name),
		Role:  domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("email", "อีเมลนี้ถูกใช้งานแล้ว")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.creds.Set(ctx, email, string(hash)); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	sessionToken, err := s.tm.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	verifyToken, err := s.mintToken(ctx, user.ID, domain.TokenEmailVerify, s.opts.VerifyTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("mint verification token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
	)

	return &RegisterResult{
		Session:           Session{User: *user, Token: sessionToken},
		VerificationToken: verifyToken,
	}, nil
}

// mintToken creates a single-use opaque token; only its hash is stored.
func (s *Service) mintToken(ctx context.Context, userID uuid.UUID, purpose domain.TokenPurpose, ttl time.Duration) (string, error) {
	raw, hash, err := s.tm.GenerateOpaqueToken()
	if err != nil {
		return "", err
	}

	err = s.tokens.Create(ctx, domain.AuthToken{
		Hash:      hash,
		UserID:    userID,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return "", err
	}

	return raw, nil
}
