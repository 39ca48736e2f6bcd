package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

func TestConsumeIsSingleUse(t *testing.T) {
	repo := NewRepo(0)
	ctx := context.Background()

	userID := uuid.New()
	err := repo.Create(ctx, domain.AuthToken{
		Hash:      "abc",
		UserID:    userID,
		Purpose:   domain.TokenPasswordReset,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Consume(ctx, "abc", domain.TokenPasswordReset)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if got.UserID != userID {
		t.Errorf("UserID = %s, want %s", got.UserID, userID)
	}

	if _, err := repo.Consume(ctx, "abc", domain.TokenPasswordReset); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Consume: err = %v, want ErrNotFound", err)
	}
}

func TestConsumeRejectsExpiredAndWrongPurpose(t *testing.T) {
	repo := NewRepo(0)
	ctx := context.Background()

	_ = repo.Create(ctx, domain.AuthToken{
		Hash:      "expired",
		UserID:    uuid.New(),
		Purpose:   domain.TokenPasswordReset,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	_ = repo.Create(ctx, domain.AuthToken{
		Hash:      "verify",
		UserID:    uuid.New(),
		Purpose:   domain.TokenEmailVerify,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	tests := []struct {
		name    string
		hash    string
		purpose domain.TokenPurpose
	}{
		{name: "expired", hash: "expired", purpose: domain.TokenPasswordReset},
		{name: "wrong purpose", hash: "verify", purpose: domain.TokenPasswordReset},
		{name: "unknown hash", hash: "nope", purpose: domain.TokenEmailVerify},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.Consume(ctx, tt.hash, tt.purpose); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestDeleteExpired(t *testing.T) {
	repo := NewRepo(0)
	ctx := context.Background()

	_ = repo.Create(ctx, domain.AuthToken{
		Hash: "old", UserID: uuid.New(),
		Purpose: domain.TokenPasswordReset, ExpiresAt: time.Now().Add(-time.Minute),
	})
	_ = repo.Create(ctx, domain.AuthToken{
		Hash: "live", UserID: uuid.New(),
		Purpose: domain.TokenEmailVerify, ExpiresAt: time.Now().Add(time.Hour),
	})
	_ = repo.Create(ctx, domain.AuthToken{
		Hash: "used", UserID: uuid.New(),
		Purpose: domain.TokenEmailVerify, ExpiresAt: time.Now().Add(time.Hour),
	})
	if _, err := repo.Consume(ctx, "used", domain.TokenEmailVerify); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	removed, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2 (expired + consumed)", removed)
	}

	if _, err := repo.Consume(ctx, "live", domain.TokenEmailVerify); err != nil {
		t.Errorf("live token should survive the sweep: %v", err)
	}
}
