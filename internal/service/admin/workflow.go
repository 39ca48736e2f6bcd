package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// ApproveTopic moves a contribution into the approved state. Admin only.
func (s *Service) ApproveTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	approved := domain.TopicStatusApproved
	topic, err := s.topics.Update(ctx, topicID, domain.TopicUpdateParams{Status: &approved})
	if err != nil {
		return nil, fmt.Errorf("approve topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic approved",
		slog.String("topic_id", topicID.String()),
	)

	return topic, nil
}

// PublishTopic makes a topic publicly visible and stamps the publication
// time. Admin only.
func (s *Service) PublishTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	published := domain.TopicStatusPublished
	now := time.Now()
	topic, err := s.topics.Update(ctx, topicID, domain.TopicUpdateParams{
		Status:      &published,
		PublishedAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("publish topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic published",
		slog.String("topic_id", topicID.String()),
	)

	return topic, nil
}

// VerifyTopic records the scholar sign-off on a topic's content,
// stamping the acting reviewer. Scholars and admins only.
func (s *Service) VerifyTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	reviewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.CanReviewCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	verified := true
	topic, err := s.topics.Update(ctx, topicID, domain.TopicUpdateParams{
		IsVerified: &verified,
		ReviewerID: &reviewerID,
	})
	if err != nil {
		return nil, fmt.Errorf("verify topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic verified",
		slog.String("topic_id", topicID.String()),
		slog.String("reviewer_id", reviewerID.String()),
	)

	return topic, nil
}
