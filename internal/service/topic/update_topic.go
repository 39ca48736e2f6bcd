package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// Update applies a partial edit to a topic. Admin only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateTopicInput) (*domain.Topic, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TopicUpdateParams{
		Title:               input.Title,
		TitleArabic:         input.TitleArabic,
		Claim:               input.Claim,
		ShortAnswer:         input.ShortAnswer,
		DetailedExplanation: input.DetailedExplanation,
		CategoryID:          input.CategoryID,
		Tags:                input.Tags,
		IsVerified:          input.IsVerified,
	}
	if input.SeverityLevel != nil {
		severity := domain.SeverityLevel(*input.SeverityLevel)
		params.SeverityLevel = &severity
	}
	if input.Status != nil {
		status := domain.TopicStatus(*input.Status)
		params.Status = &status
	}

	updated, err := s.topics.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("topic_id", id.String()),
	)

	return updated, nil
}

// Delete removes a topic. Admin only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.topics.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", id.String()),
	)

	return nil
}
