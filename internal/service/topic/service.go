package topic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Topic, error)
	Search(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error)
	GetFeatured(ctx context.Context, limit int) ([]domain.Topic, error)
	GetPopular(ctx context.Context, limit int) ([]domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (domain.TopicStats, error)
}

type categoryRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

type evidenceRepo interface {
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Evidence, error)
}

const (
	DefaultPerPage = 9
	MaxPerPage     = 50
)

// Service provides the public topic catalog and the contribution flow.
type Service struct {
	topics     topicRepo
	categories categoryRepo
	evidence   evidenceRepo
	log        *slog.Logger
}

// NewService creates a new Topic service.
func NewService(log *slog.Logger, topics topicRepo, categories categoryRepo, evidence evidenceRepo) *Service {
	return &Service{
		topics:     topics,
		categories: categories,
		evidence:   evidence,
		log:        log.With("service", "topic"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
