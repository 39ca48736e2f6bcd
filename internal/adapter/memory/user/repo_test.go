package user

import (
	"context"
	"errors"
	"testing"

	"github.com/haqqvault/backend/internal/adapter/memory/seed"
	"github.com/haqqvault/backend/internal/domain"
)

func newSeededRepo() *Repo {
	return NewRepo(seed.Users(), 0)
}

func TestGetByEmailIsCaseInsensitive(t *testing.T) {
	repo := newSeededRepo()

	got, err := repo.GetByEmail(context.Background(), "Admin@HaqqVault.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != seed.UserAdminID {
		t.Errorf("ID = %s, want admin", got.ID)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newSeededRepo()

	_, err := repo.Create(context.Background(), &domain.User{
		Email: "USER@example.com",
		Name:  "ซ้ำ",
		Role:  domain.RoleUser,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestListPaging(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != len(seed.Users()) {
		t.Fatalf("Count = %d, want %d", total, len(seed.Users()))
	}

	page, err := repo.List(ctx, 4, 4)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != total-4 {
		t.Errorf("len = %d, want %d", len(page), total-4)
	}

	empty, err := repo.List(ctx, 10, total)
	if err != nil {
		t.Fatalf("List past end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len = %d, want 0", len(empty))
	}
}

func TestSetVerifiedAndRole(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	verified, err := repo.SetVerified(ctx, seed.UserFatimahID)
	if err != nil {
		t.Fatalf("SetVerified: %v", err)
	}
	if !verified.IsVerified {
		t.Error("IsVerified = false after SetVerified")
	}

	promoted, err := repo.SetRole(ctx, seed.UserAliID, domain.RoleScholar)
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if promoted.Role != domain.RoleScholar {
		t.Errorf("Role = %q, want scholar", promoted.Role)
	}
}
