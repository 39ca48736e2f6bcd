package admin

import (
	"context"
	"fmt"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// Dashboard is the aggregate view the admin landing page renders.
type Dashboard struct {
	Topics        domain.TopicStats
	Categories    domain.CategoryStats
	TotalUsers    int
	PendingReview []domain.Topic
}

// GetDashboard collects the counters and the pending-review queue.
// Admin only.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	topicStats, err := s.topics.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}
	categoryStats, err := s.categories.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	pending := domain.TopicStatusPending
	queue, err := s.topics.Search(ctx, domain.TopicFilter{Status: &pending})
	if err != nil {
		return nil, fmt.Errorf("pending topics: %w", err)
	}

	return &Dashboard{
		Topics:        topicStats,
		Categories:    categoryStats,
		TotalUsers:    totalUsers,
		PendingReview: queue,
	}, nil
}
