package evidence

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/haqqvault/backend/internal/adapter/memory"
	"github.com/haqqvault/backend/internal/domain"
)

// Repo is the in-memory evidence store. TopicID references are not
// validated here; orphaned evidence is simply never listed.
type Repo struct {
	mu      sync.RWMutex
	items   []domain.Evidence
	latency time.Duration
}

// NewRepo creates an evidence store seeded with a copy of the given records.
func NewRepo(seed []domain.Evidence, latency time.Duration) *Repo {
	return &Repo{items: slices.Clone(seed), latency: latency}
}

// GetByID returns the evidence record or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Evidence, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			e := r.items[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("evidence %s: %w", id, domain.ErrNotFound)
}

// ListByTopic returns the topic's evidence sorted by Order ascending.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Evidence, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Filter(r.items, func(e domain.Evidence, _ int) bool {
		return e.TopicID == topicID
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// Create assigns an ID and places the record at the end of its topic's
// display order.
func (r *Repo) Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	maxOrder := 0
	for i := range r.items {
		if r.items[i].TopicID == e.TopicID && r.items[i].Order > maxOrder {
			maxOrder = r.items[i].Order
		}
	}

	now := time.Now()
	created := *e
	created.ID = uuid.New()
	created.Order = maxOrder + 1
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items = append(r.items, created)

	out := created
	return &out, nil
}

// Update merges the supplied fields and refreshes UpdatedAt.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EvidenceUpdateParams) (*domain.Evidence, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.items, func(e domain.Evidence) bool { return e.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("evidence %s: %w", id, domain.ErrNotFound)
	}

	e := &r.items[idx]
	if params.Type != nil {
		e.Type = *params.Type
	}
	if params.Title != nil {
		e.Title = *params.Title
	}
	if params.TitleArabic != nil {
		e.TitleArabic = params.TitleArabic
	}
	if params.Content != nil {
		e.Content = *params.Content
	}
	if params.ContentArabic != nil {
		e.ContentArabic = params.ContentArabic
	}
	if params.Source != nil {
		e.Source = *params.Source
	}
	if params.SourceReference != nil {
		e.SourceReference = params.SourceReference
	}
	if params.IsAuthenticated != nil {
		e.IsAuthenticated = *params.IsAuthenticated
	}
	if params.Order != nil {
		e.Order = *params.Order
	}
	e.UpdatedAt = time.Now()

	out := *e
	return &out, nil
}

// Delete removes the record or returns domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.items, func(e domain.Evidence) bool { return e.ID == id })
	if idx < 0 {
		return fmt.Errorf("evidence %s: %w", id, domain.ErrNotFound)
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}
