package category

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

// Repo is the in-memory category store.
type Repo struct {
	mu         sync.RWMutex
	categories []domain.Category
	latency    time.Duration
}

// NewRepo creates a category store seeded with a copy of the given records.
func NewRepo(seed []domain.Category, latency time.Duration) *Repo {
	return &Repo{categories: slices.Clone(seed), latency: latency}
}

// GetByID returns the category with the given ID or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
}

// GetBySlug returns the category with the given slug or domain.ErrNotFound.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.categories {
		if r.categories[i].Slug == slug {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", slug, domain.ErrNotFound)
}

// GetAll returns every category sorted by Order ascending.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Category, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// GetActive returns active categories sorted by Order ascending.
func (r *Repo) GetActive(ctx context.Context) ([]domain.Category, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Filter(r.categories, func(c domain.Category, _ int) bool { return c.IsActive })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// Create assigns an ID, derives the slug from the name, puts the category
// at the end of the display order, and activates it.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	maxOrder := 0
	for i := range r.categories {
		if r.categories[i].Order > maxOrder {
			maxOrder = r.categories[i].Order
		}
	}

	now := time.Now()
	created := *c
	created.ID = uuid.New()
	created.Slug = domain.Slugify(c.Name)
	created.TopicCount = 0
	created.Order = maxOrder + 1
	created.IsActive = true
	created.CreatedAt = now
	created.UpdatedAt = now

	r.categories = append(r.categories, created)

	out := created
	return &out, nil
}

// Update merges the supplied fields and refreshes UpdatedAt.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.categories, func(c domain.Category) bool { return c.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	c := &r.categories[idx]
	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.NameArabic != nil {
		c.NameArabic = params.NameArabic
	}
	if params.Description != nil {
		c.Description = *params.Description
	}
	if params.Icon != nil {
		c.Icon = *params.Icon
	}
	if params.Color != nil {
		c.Color = *params.Color
	}
	if params.Order != nil {
		c.Order = *params.Order
	}
	if params.IsActive != nil {
		c.IsActive = *params.IsActive
	}
	c.UpdatedAt = time.Now()

	out := *c
	return &out, nil
}

// Delete removes the category or returns domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.categories, func(c domain.Category) bool { return c.ID == id })
	if idx < 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	r.categories = slices.Delete(r.categories, idx, idx+1)
	return nil
}

// SetTopicCounts overwrites the denormalized per-category topic counters.
// Categories absent from the map are reset to zero. This is the only
// path that ever changes TopicCount.
func (r *Repo) SetTopicCounts(ctx context.Context, counts map[uuid.UUID]int) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for i := range r.categories {
		r.categories[i].TopicCount = counts[r.categories[i].ID]
		r.categories[i].UpdatedAt = now
	}
	return nil
}

// Stats re-scans the full collection on every call.
func (r *Repo) Stats(ctx context.Context) (domain.CategoryStats, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return domain.CategoryStats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.CategoryStats{
		TotalCategories: len(r.categories),
		ActiveCategories: lo.CountBy(r.categories, func(c domain.Category) bool {
			return c.IsActive
		}),
		TotalTopicsInCategories: lo.SumBy(r.categories, func(c domain.Category) int {
			return c.TopicCount
		}),
	}, nil
}
