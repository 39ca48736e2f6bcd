package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// Create adds a taxonomy node at the end of the display order. Admin only.
func (s *Service) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        strings.TrimSpace(input.Name),
		NameArabic:  input.NameArabic,
		Description: strings.TrimSpace(input.Description),
		Icon:        input.Icon,
		Color:       input.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// Update applies a partial edit. Admin only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*domain.Category, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.categories.Update(ctx, id, domain.CategoryUpdateParams{
		Name:        input.Name,
		NameArabic:  input.NameArabic,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Order:       input.Order,
		IsActive:    input.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", id.String()),
	)

	return updated, nil
}

// Delete removes a category. Admin only. Topics referencing it are left
// in place; they surface under no category until re-assigned.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("category_id", id.String()),
	)

	return nil
}

// RecalculateTopicCounts rebuilds the denormalized per-category counters
// from the topic collection. This is the only path that changes
// TopicCount. Admin only.
func (s *Service) RecalculateTopicCounts(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	counts, err := s.topics.CountByCategory(ctx)
	if err != nil {
		return fmt.Errorf("count topics by category: %w", err)
	}
	if err := s.categories.SetTopicCounts(ctx, counts); err != nil {
		return fmt.Errorf("set topic counts: %w", err)
	}

	s.log.InfoContext(ctx, "topic counts recalculated",
		slog.Int("categories", len(counts)),
	)

	return nil
}
