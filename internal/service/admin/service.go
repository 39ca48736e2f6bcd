package admin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

type topicRepo interface {
	Search(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Stats(ctx context.Context) (domain.TopicStats, error)
}

type categoryRepo interface {
	Stats(ctx context.Context) (domain.CategoryStats, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// Service backs the admin dashboard: editorial workflow actions, user
// administration and aggregate counters.
type Service struct {
	topics     topicRepo
	categories categoryRepo
	users      userRepo
	log        *slog.Logger
}

// NewService creates a new Admin service.
func NewService(log *slog.Logger, topics topicRepo, categories categoryRepo, users userRepo) *Service {
	return &Service{
		topics:     topics,
		categories: categories,
		users:      users,
		log:        log.With("service", "admin"),
	}
}
