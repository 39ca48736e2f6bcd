package topic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/haqqvault/backend/internal/domain"
)

// List returns one page of the public catalog. Only published topics are
// listed; query, category and severity filters are conjunctive.
func (s *Service) List(ctx context.Context, input ListTopicsInput) (domain.PaginatedResult[domain.Topic], error) {
	var empty domain.PaginatedResult[domain.Topic]

	if err := input.Validate(); err != nil {
		return empty, err
	}
	input.normalize()

	filter := domain.TopicFilter{}

	published := domain.TopicStatusPublished
	filter.Status = &published

	if q := strings.TrimSpace(input.Query); q != "" {
		filter.Query = &q
	}
	if input.Severity != "" {
		severity := domain.SeverityLevel(input.Severity)
		filter.SeverityLevel = &severity
	}
	if input.CategorySlug != "" {
		category, err := s.categories.GetBySlug(ctx, input.CategorySlug)
		if err != nil {
			return empty, fmt.Errorf("resolve category %q: %w", input.CategorySlug, err)
		}
		filter.CategoryID = &category.ID
	}

	matched, err := s.topics.Search(ctx, filter)
	if err != nil {
		return empty, fmt.Errorf("search topics: %w", err)
	}

	sortTopics(matched, domain.TopicSort(input.Sort))

	return paginate(matched, input.Page, input.PerPage), nil
}

func sortTopics(topics []domain.Topic, by domain.TopicSort) {
	switch by {
	case domain.SortPopular:
		sort.SliceStable(topics, func(i, j int) bool {
			return topics[i].ViewCount > topics[j].ViewCount
		})
	default:
		sort.SliceStable(topics, func(i, j int) bool {
			return topics[i].CreatedAt.After(topics[j].CreatedAt)
		})
	}
}

// paginate slices one 1-based page out of the sorted result. Pages past
// the end come back empty with the correct Total.
func paginate(topics []domain.Topic, page, perPage int) domain.PaginatedResult[domain.Topic] {
	result := domain.PaginatedResult[domain.Topic]{
		Data:    []domain.Topic{},
		Total:   len(topics),
		Page:    page,
		PerPage: perPage,
	}

	start := (page - 1) * perPage
	if start >= len(topics) {
		return result
	}
	end := min(start+perPage, len(topics))
	result.Data = topics[start:end]
	return result
}
