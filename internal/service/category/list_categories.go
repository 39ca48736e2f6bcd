package category

import (
	"context"
	"fmt"

	"github.com/haqqvault/backend/internal/domain"
)

// List returns every category in display order, inactive ones included.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListActive returns the categories the public navigation shows.
func (s *Service) ListActive(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	return categories, nil
}

// GetBySlug returns one category.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", slug, err)
	}
	return category, nil
}

// Stats returns the aggregate category counters for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (domain.CategoryStats, error) {
	stats, err := s.categories.Stats(ctx)
	if err != nil {
		return domain.CategoryStats{}, fmt.Errorf("category stats: %w", err)
	}
	return stats, nil
}
