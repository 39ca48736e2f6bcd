package evidence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

// CreateEvidenceInput holds the fields for a new citation.
type CreateEvidenceInput struct {
	TopicID         uuid.UUID
	Type            string
	Title           string
	TitleArabic     *string
	Content         string
	ContentArabic   *string
	Source          string
	SourceReference *string
	IsAuthenticated bool
}

// Validate checks required fields, collecting all errors.
func (in *CreateEvidenceInput) Validate() error {
	var errs []domain.FieldError

	if in.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topicId", Message: "กรุณาระบุหัวข้อ"})
	}
	if !domain.EvidenceType(in.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "ประเภทหลักฐานไม่ถูกต้อง"})
	}
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "กรุณาระบุชื่อหลักฐาน"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "กรุณาระบุเนื้อหา"})
	}
	if strings.TrimSpace(in.Source) == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "กรุณาระบุแหล่งอ้างอิง"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEvidenceInput holds a partial update. Nil fields are left unchanged.
type UpdateEvidenceInput struct {
	Type            *string
	Title           *string
	TitleArabic     *string
	Content         *string
	ContentArabic   *string
	Source          *string
	SourceReference *string
	IsAuthenticated *bool
	Order           *int
}

// Validate checks enum-valued fields when supplied.
func (in *UpdateEvidenceInput) Validate() error {
	if in.Type != nil && !domain.EvidenceType(*in.Type).IsValid() {
		return domain.NewValidationError("type", "ประเภทหลักฐานไม่ถูกต้อง")
	}
	return nil
}

// ListByTopic returns the topic's citations in display order.
func (s *Service) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Evidence, error) {
	items, err := s.evidence.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	return items, nil
}

// Create attaches a citation to a topic. Scholars and admins only.
func (s *Service) Create(ctx context.Context, input CreateEvidenceInput) (*domain.Evidence, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.CanReviewCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The topic must exist; evidence never dangles at creation time.
	if _, err := s.topics.GetByID(ctx, input.TopicID); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	created, err := s.evidence.Create(ctx, &domain.Evidence{
		TopicID:         input.TopicID,
		Type:            domain.EvidenceType(input.Type),
		Title:           strings.TrimSpace(input.Title),
		TitleArabic:     input.TitleArabic,
		Content:         strings.TrimSpace(input.Content),
		ContentArabic:   input.ContentArabic,
		Source:          strings.TrimSpace(input.Source),
		SourceReference: input.SourceReference,
		IsAuthenticated: input.IsAuthenticated,
	})
	if err != nil {
		return nil, fmt.Errorf("create evidence: %w", err)
	}

	s.log.InfoContext(ctx, "evidence created",
		slog.String("evidence_id", created.ID.String()),
		slog.String("topic_id", input.TopicID.String()),
	)

	return created, nil
}

// Update applies a partial edit. Scholars and admins only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateEvidenceInput) (*domain.Evidence, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.CanReviewCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.EvidenceUpdateParams{
		Title:           input.Title,
		TitleArabic:     input.TitleArabic,
		Content:         input.Content,
		ContentArabic:   input.ContentArabic,
		Source:          input.Source,
		SourceReference: input.SourceReference,
		IsAuthenticated: input.IsAuthenticated,
		Order:           input.Order,
	}
	if input.Type != nil {
		evType := domain.EvidenceType(*input.Type)
		params.Type = &evType
	}

	updated, err := s.evidence.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update evidence: %w", err)
	}

	s.log.InfoContext(ctx, "evidence updated",
		slog.String("evidence_id", id.String()),
	)

	return updated, nil
}

// Delete removes a citation. Scholars and admins only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.CanReviewCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.evidence.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete evidence: %w", err)
	}

	s.log.InfoContext(ctx, "evidence deleted",
		slog.String("evidence_id", id.String()),
	)

	return nil
}
