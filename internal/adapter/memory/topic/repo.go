package topic

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/haqqvault/backend/internal/adapter/memory"
	"github.com/haqqvault/backend/internal/domain"
)

// Repo is the in-memory topic store. It owns a private copy of the seed
// slice; new topics are prepended so recent contributions surface first,
// matching the site's behavior.
type Repo struct {
	mu      sync.RWMutex
	topics  []domain.Topic
	latency time.Duration
}

// NewRepo creates a topic store seeded with a copy of the given records.
func NewRepo(seed []domain.Topic, latency time.Duration) *Repo {
	topics := make([]domain.Topic, len(seed))
	for i, t := range seed {
		topics[i] = cloneTopic(t)
	}
	return &Repo{topics: topics, latency: latency}
}

func cloneTopic(t domain.Topic) domain.Topic {
	t.Tags = slices.Clone(t.Tags)
	return t
}

// GetByID returns the topic with the given ID or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.topics {
		if r.topics[i].ID == id {
			t := cloneTopic(r.topics[i])
			return &t, nil
		}
	}
	return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
}

// GetBySlug returns the topic with the given slug or domain.ErrNotFound.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.topics {
		if r.topics[i].Slug == slug {
			t := cloneTopic(r.topics[i])
			return &t, nil
		}
	}
	return nil, fmt.Errorf("topic %q: %w", slug, domain.ErrNotFound)
}

// GetAll returns a copy of every topic in insertion order.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.topics, func(t domain.Topic, _ int) domain.Topic {
		return cloneTopic(t)
	}), nil
}

// GetPaginated slices one 1-based page out of the full list. Out-of-range
// pages return an empty Data slice with the correct Total.
func (r *Repo) GetPaginated(ctx context.Context, page, perPage int) (domain.PaginatedResult[domain.Topic], error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return domain.PaginatedResult[domain.Topic]{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := domain.PaginatedResult[domain.Topic]{
		Data:    []domain.Topic{},
		Total:   len(r.topics),
		Page:    page,
		PerPage: perPage,
	}

	start := (page - 1) * perPage
	if start < 0 || start >= len(r.topics) || perPage <= 0 {
		return result, nil
	}
	end := min(start+perPage, len(r.topics))

	result.Data = lo.Map(r.topics[start:end], func(t domain.Topic, _ int) domain.Topic {
		return cloneTopic(t)
	})
	return result, nil
}

// GetByCategory returns the topics referencing the given category.
func (r *Repo) GetByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := lo.Filter(r.topics, func(t domain.Topic, _ int) bool {
		return t.CategoryID == categoryID
	})
	return lo.Map(matched, func(t domain.Topic, _ int) domain.Topic {
		return cloneTopic(t)
	}), nil
}

// Search applies the filter conjunctively: every supplied field must
// match. Seed order is preserved.
func (r *Repo) Search(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := lo.Filter(r.topics, func(t domain.Topic, _ int) bool {
		return matches(t, filter)
	})
	return lo.Map(matched, func(t domain.Topic, _ int) domain.Topic {
		return cloneTopic(t)
	}), nil
}

func matches(t domain.Topic, f domain.TopicFilter) bool {
	if f.Query != nil {
		q := domain.FoldText(*f.Query)
		if q != "" && !matchesQuery(t, q, f.MatchExplanation) {
			return false
		}
	}
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	if f.SeverityLevel != nil && t.SeverityLevel != *f.SeverityLevel {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.IsVerified != nil && t.IsVerified != *f.IsVerified {
		return false
	}
	return true
}

func matchesQuery(t domain.Topic, q string, includeExplanation bool) bool {
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Claim), q) ||
		strings.Contains(strings.ToLower(t.ShortAnswer), q) {
		return true
	}
	if includeExplanation && strings.Contains(strings.ToLower(t.DetailedExplanation), q) {
		return true
	}
	return lo.SomeBy(t.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// GetFeatured returns up to limit verified, published topics in seed order.
func (r *Repo) GetFeatured(ctx context.Context, limit int) ([]domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := lo.Filter(r.topics, func(t domain.Topic, _ int) bool {
		return t.IsVerified && t.Status == domain.TopicStatusPublished
	})
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return lo.Map(featured, func(t domain.Topic, _ int) domain.Topic {
		return cloneTopic(t)
	}), nil
}

// GetPopular returns up to limit published topics by descending view count.
func (r *Repo) GetPopular(ctx context.Context, limit int) ([]domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	published := lo.Filter(r.topics, func(t domain.Topic, _ int) bool {
		return t.Status == domain.TopicStatusPublished
	})
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].ViewCount > published[j].ViewCount
	})
	if len(published) > limit {
		published = published[:limit]
	}
	return lo.Map(published, func(t domain.Topic, _ int) domain.Topic {
		return cloneTopic(t)
	}), nil
}

// Create assigns an ID, derives the slug from the title, applies the
// draft defaults, and prepends the topic.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	created := cloneTopic(*t)
	created.ID = uuid.New()
	created.Slug = domain.Slugify(t.Title)
	created.Status = domain.TopicStatusDraft
	created.IsVerified = false
	created.ViewCount = 0
	created.ReviewerID = nil
	created.PublishedAt = nil
	created.CreatedAt = now
	created.UpdatedAt = now

	r.topics = append([]domain.Topic{created}, r.topics...)

	out := cloneTopic(created)
	return &out, nil
}

// Update merges the supplied fields and refreshes UpdatedAt.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.topics, func(t domain.Topic) bool { return t.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	t := &r.topics[idx]
	if params.Title != nil {
		t.Title = *params.Title
	}
	if params.TitleArabic != nil {
		t.TitleArabic = params.TitleArabic
	}
	if params.Claim != nil {
		t.Claim = *params.Claim
	}
	if params.ShortAnswer != nil {
		t.ShortAnswer = *params.ShortAnswer
	}
	if params.DetailedExplanation != nil {
		t.DetailedExplanation = *params.DetailedExplanation
	}
	if params.CategoryID != nil {
		t.CategoryID = *params.CategoryID
	}
	if params.SeverityLevel != nil {
		t.SeverityLevel = *params.SeverityLevel
	}
	if params.Tags != nil {
		t.Tags = slices.Clone(params.Tags)
	}
	if params.Status != nil {
		t.Status = *params.Status
	}
	if params.IsVerified != nil {
		t.IsVerified = *params.IsVerified
	}
	if params.ReviewerID != nil {
		t.ReviewerID = params.ReviewerID
	}
	if params.PublishedAt != nil {
		t.PublishedAt = params.PublishedAt
	}
	t.UpdatedAt = time.Now()

	out := cloneTopic(*t)
	return &out, nil
}

// Delete removes the topic or returns domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.topics, func(t domain.Topic) bool { return t.ID == id })
	if idx < 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	r.topics = slices.Delete(r.topics, idx, idx+1)
	return nil
}

// IncrementViewCount is best-effort: a missing ID is a no-op.
func (r *Repo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.topics, func(t domain.Topic) bool { return t.ID == id })
	if idx >= 0 {
		r.topics[idx].ViewCount++
	}
	return nil
}

// Stats re-scans the full collection on every call; nothing is cached.
func (r *Repo) Stats(ctx context.Context) (domain.TopicStats, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return domain.TopicStats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.TopicStats{
		TotalTopics: len(r.topics),
		PublishedTopics: lo.CountBy(r.topics, func(t domain.Topic) bool {
			return t.Status == domain.TopicStatusPublished
		}),
		PendingTopics: lo.CountBy(r.topics, func(t domain.Topic) bool {
			return t.Status == domain.TopicStatusPending
		}),
		VerifiedTopics: lo.CountBy(r.topics, func(t domain.Topic) bool {
			return t.IsVerified
		}),
	}, nil
}

// CountByCategory returns the number of topics per category, used by the
// explicit topic-count recount.
func (r *Repo) CountByCategory(ctx context.Context) (map[uuid.UUID]int, error) {
	if err := memory.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[uuid.UUID]int, len(r.topics))
	for i := range r.topics {
		counts[r.topics[i].CategoryID]++
	}
	return counts, nil
}
