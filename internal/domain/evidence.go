package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evidence is a citation supporting a topic's answer. TopicID is not
// referentially enforced at the data layer; multiple records per topic
// are displayed sorted by Order.
type Evidence struct {
	ID              uuid.UUID
	TopicID         uuid.UUID
	Type            EvidenceType
	Title           string
	TitleArabic     *string
	Content         string
	ContentArabic   *string
	Source          string
	SourceReference *string
	IsAuthenticated bool
	Order           int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EvidenceUpdateParams carries a partial update. Nil fields are left unchanged.
type EvidenceUpdateParams struct {
	Type            *EvidenceType
	Title           *string
	TitleArabic     *string
	Content         *string
	ContentArabic   *string
	Source          *string
	SourceReference *string
	IsAuthenticated *bool
	Order           *int
}
