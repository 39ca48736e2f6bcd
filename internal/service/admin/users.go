package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// UserList is one page of accounts plus the total count.
type UserList struct {
	Users []domain.User
	Total int
}

// ListUsers returns a page of accounts in registration order. Admin only.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*UserList, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit < 1 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &UserList{Users: users, Total: total}, nil
}

// SetUserRole changes an account's role. Admins cannot demote their own
// account, so the site always keeps at least the acting admin. Admin only.
func (s *Service) SetUserRole(ctx context.Context, userID uuid.UUID, role string) (*domain.User, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	newRole := domain.UserRole(role)
	if !newRole.IsValid() {
		return nil, domain.NewValidationError("role", "บทบาทไม่ถูกต้อง")
	}
	if userID == actorID && newRole != domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "ไม่สามารถลดสิทธิ์บัญชีของตนเองได้")
	}

	user, err := s.users.SetRole(ctx, userID, newRole)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", role),
	)

	return user, nil
}
