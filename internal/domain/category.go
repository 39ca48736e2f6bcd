package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a taxonomy node grouping topics.
//
// TopicCount is denormalized and is NOT maintained by topic mutations;
// it only changes through an explicit recount (admin operation).
type Category struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	NameArabic  *string
	Description string
	Icon        string
	Color       string
	TopicCount  int
	Order       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryStats holds aggregate counts over the category collection.
type CategoryStats struct {
	TotalCategories         int
	ActiveCategories        int
	TotalTopicsInCategories int
}

// CategoryUpdateParams carries a partial update. Nil fields are left unchanged.
type CategoryUpdateParams struct {
	Name        *string
	NameArabic  *string
	Description *string
	Icon        *string
	Color       *string
	Order       *int
	IsActive    *bool
}
