package evidence

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

type evidenceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Evidence, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Evidence, error)
	Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EvidenceUpdateParams) (*domain.Evidence, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
}

// Service manages the citations attached to topics. Mutations are
// reserved for scholars and admins.
type Service struct {
	evidence evidenceRepo
	topics   topicRepo
	log      *slog.Logger
}

// NewService creates a new Evidence service.
func NewService(log *slog.Logger, evidence evidenceRepo, topics topicRepo) *Service {
	return &Service{
		evidence: evidence,
		topics:   topics,
		log:      log.With("service", "evidence"),
	}
}
