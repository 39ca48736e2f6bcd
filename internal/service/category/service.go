package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetActive(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetTopicCounts(ctx context.Context, counts map[uuid.UUID]int) error
	Stats(ctx context.Context) (domain.CategoryStats, error)
}

type topicCounter interface {
	CountByCategory(ctx context.Context) (map[uuid.UUID]int, error)
}

// Service provides taxonomy management.
type Service struct {
	categories categoryRepo
	topics     topicCounter
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, topics topicCounter) *Service {
	return &Service{
		categories: categories,
		topics:     topics,
		log:        log.With("service", "category"),
	}
}
