package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/haqqvault/backend/internal/domain"
)

// Search runs the site-wide search over published topics. Unlike the
// catalog listing it also scans the detailed explanation. A blank query
// returns no results rather than the whole catalog.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Topic, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []domain.Topic{}, nil
	}

	published := domain.TopicStatusPublished
	matched, err := s.topics.Search(ctx, domain.TopicFilter{
		Query:            &q,
		Status:           &published,
		MatchExplanation: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search topics: %w", err)
	}

	sortTopics(matched, domain.SortNewest)
	return matched, nil
}
