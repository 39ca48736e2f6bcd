package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic represents an accusation/doubt together with its curated answer.
type Topic struct {
	ID                  uuid.UUID
	Slug                string
	Title               string
	TitleArabic         *string
	Claim               string
	ShortAnswer         string
	DetailedExplanation string
	CategoryID          uuid.UUID
	SeverityLevel       SeverityLevel
	Tags                []string
	Status              TopicStatus
	IsVerified          bool
	ViewCount           int
	AuthorID            *uuid.UUID
	ReviewerID          *uuid.UUID
	PublishedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TopicStats holds aggregate counts over the topic collection.
type TopicStats struct {
	TotalTopics     int
	PublishedTopics int
	PendingTopics   int
	VerifiedTopics  int
}

// TopicUpdateParams carries a partial update. Nil fields are left unchanged.
type TopicUpdateParams struct {
	Title               *string
	TitleArabic         *string
	Claim               *string
	ShortAnswer         *string
	DetailedExplanation *string
	CategoryID          *uuid.UUID
	SeverityLevel       *SeverityLevel
	Tags                []string
	Status              *TopicStatus
	IsVerified          *bool
	ReviewerID          *uuid.UUID
	PublishedAt         *time.Time
}

// TopicFilter contains search parameters for topic scans. All supplied
// fields must match (conjunctive semantics). Query is matched as a
// case-folded substring across title, claim, short answer and tags;
// MatchExplanation additionally includes the detailed explanation, which
// the site's search page scans but its topic lists do not.
type TopicFilter struct {
	Query            *string
	CategoryID       *uuid.UUID
	SeverityLevel    *SeverityLevel
	Status           *TopicStatus
	IsVerified       *bool
	MatchExplanation bool
}

// TopicSort selects the comparator for topic listings.
type TopicSort string

const (
	SortNewest  TopicSort = "newest"  // createdAt descending
	SortPopular TopicSort = "popular" // viewCount descending
)

func (s TopicSort) IsValid() bool {
	return s == SortNewest || s == SortPopular
}

// PaginatedResult is a single page of records plus the full collection size.
type PaginatedResult[T any] struct {
	Data    []T
	Total   int
	Page    int
	PerPage int
}
