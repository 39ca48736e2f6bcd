package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
)

// ListTopicsInput holds the catalog listing parameters. CategorySlug and
// Severity are optional filters; zero values mean "no filter".
type ListTopicsInput struct {
	Query        string
	CategorySlug string
	Severity     string
	Sort         string
	Page         int
	PerPage      int
}

// Validate checks enum-valued parameters. Page/PerPage are normalized,
// not rejected.
func (in *ListTopicsInput) Validate() error {
	var errs []domain.FieldError

	if in.Severity != "" && !domain.SeverityLevel(in.Severity).IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "ระดับความยากไม่ถูกต้อง"})
	}
	if in.Sort != "" && !domain.TopicSort(in.Sort).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "รูปแบบการเรียงลำดับไม่ถูกต้อง"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in *ListTopicsInput) normalize() {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = DefaultPerPage
	}
	if in.PerPage > MaxPerPage {
		in.PerPage = MaxPerPage
	}
	if in.Sort == "" {
		in.Sort = string(domain.SortNewest)
	}
}

// CreateTopicInput holds the fields for a new contribution.
type CreateTopicInput struct {
	Title               string
	TitleArabic         *string
	Claim               string
	ShortAnswer         string
	DetailedExplanation string
	CategoryID          uuid.UUID
	SeverityLevel       string
	Tags                []string
}

// Validate checks required fields, collecting all errors.
func (in *CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "กรุณาระบุหัวข้อ"})
	}
	if strings.TrimSpace(in.Claim) == "" {
		errs = append(errs, domain.FieldError{Field: "claim", Message: "กรุณาระบุข้อกล่าวหา"})
	}
	if strings.TrimSpace(in.ShortAnswer) == "" {
		errs = append(errs, domain.FieldError{Field: "shortAnswer", Message: "กรุณาระบุคำตอบโดยย่อ"})
	}
	if in.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "กรุณาเลือกหมวดหมู่"})
	}
	if !domain.SeverityLevel(in.SeverityLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "severityLevel", Message: "ระดับความยากไม่ถูกต้อง"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTopicInput holds a partial topic update. Nil fields are left
// unchanged.
type UpdateTopicInput struct {
	Title               *string
	TitleArabic         *string
	Claim               *string
	ShortAnswer         *string
	DetailedExplanation *string
	CategoryID          *uuid.UUID
	SeverityLevel       *string
	Tags                []string
	Status              *string
	IsVerified          *bool
}

// Validate checks enum-valued fields when supplied.
func (in *UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "กรุณาระบุหัวข้อ"})
	}
	if in.SeverityLevel != nil && !domain.SeverityLevel(*in.SeverityLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "severityLevel", Message: "ระดับความยากไม่ถูกต้อง"})
	}
	if in.Status != nil && !domain.TopicStatus(*in.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "สถานะไม่ถูกต้อง"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
