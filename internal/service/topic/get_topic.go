package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// TopicPage is a topic together with its supporting evidence, the shape
// the topic detail page renders.
type TopicPage struct {
	Topic    domain.Topic
	Evidence []domain.Evidence
}

// GetBySlug returns the topic detail page and bumps the view counter.
// Unpublished topics are only visible to reviewers, and reviewer reads
// do not count as views.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*TopicPage, error) {
	t, err := s.topics.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get topic %q: %w", slug, err)
	}

	if t.Status != domain.TopicStatusPublished {
		if !ctxutil.CanReviewCtx(ctx) {
			return nil, fmt.Errorf("topic %q: %w", slug, domain.ErrNotFound)
		}
	} else {
		// Best-effort: a failed counter bump never fails the page.
		if err := s.topics.IncrementViewCount(ctx, t.ID); err != nil {
			s.log.WarnContext(ctx, "increment view count failed",
				slog.String("topic_id", t.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			t.ViewCount++
		}
	}

	evidence, err := s.evidence.ListByTopic(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}

	return &TopicPage{Topic: *t, Evidence: evidence}, nil
}
