package topic

import (
	"context"
	"fmt"

	"github.com/haqqvault/backend/internal/domain"
)

// Featured returns up to limit scholar-verified published topics for the
// landing page.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Topic, error) {
	topics, err := s.topics.GetFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get featured topics: %w", err)
	}
	return topics, nil
}

// Popular returns up to limit published topics by descending view count.
func (s *Service) Popular(ctx context.Context, limit int) ([]domain.Topic, error) {
	topics, err := s.topics.GetPopular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get popular topics: %w", err)
	}
	return topics, nil
}

// Stats returns the aggregate topic counters for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (domain.TopicStats, error) {
	stats, err := s.topics.Stats(ctx)
	if err != nil {
		return domain.TopicStats{}, fmt.Errorf("topic stats: %w", err)
	}
	return stats, nil
}
