package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// Create submits a new topic from the authenticated user. Contributions
// always start as unverified drafts; publication goes through the
// editorial workflow.
func (s *Service) Create(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.topics.Create(ctx, &domain.Topic{
		Title:               strings.TrimSpace(input.Title),
		TitleArabic:         trimOrNil(input.TitleArabic),
		Claim:               strings.TrimSpace(input.Claim),
		ShortAnswer:         strings.TrimSpace(input.ShortAnswer),
		DetailedExplanation: strings.TrimSpace(input.DetailedExplanation),
		CategoryID:          input.CategoryID,
		SeverityLevel:       domain.SeverityLevel(input.SeverityLevel),
		Tags:                input.Tags,
		AuthorID:            &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}
