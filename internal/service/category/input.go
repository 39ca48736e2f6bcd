package category

import (
	"strings"

	"github.com/haqqvault/backend/internal/domain"
)

// CreateCategoryInput holds the fields for a new taxonomy node.
type CreateCategoryInput struct {
	Name        string
	NameArabic  *string
	Description string
	Icon        string
	Color       string
}

// Validate checks required fields, collecting all errors.
func (in *CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "กรุณาระบุชื่อหมวดหมู่"})
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "กรุณาระบุคำอธิบาย"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCategoryInput holds a partial update. Nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name        *string
	NameArabic  *string
	Description *string
	Icon        *string
	Color       *string
	Order       *int
	IsActive    *bool
}

// Validate rejects blanking out required fields.
func (in *UpdateCategoryInput) Validate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return domain.NewValidationError("name", "กรุณาระบุชื่อหมวดหมู่")
	}
	return nil
}
