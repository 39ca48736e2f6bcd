package consent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/haqqvault/backend/internal/domain"
)

type consentRepo interface {
	Get(ctx context.Context, visitorID string) (*domain.ConsentRecord, error)
	Put(ctx context.Context, rec domain.ConsentRecord) error
}

// Service tracks per-visitor cookie consent. Visitors are anonymous;
// records are keyed by the visitor ID cookie, not by account.
type Service struct {
	records consentRepo
	log     *slog.Logger
}

// NewService creates a new Consent service.
func NewService(log *slog.Logger, records consentRepo) *Service {
	return &Service{
		records: records,
		log:     log.With("service", "consent"),
	}
}

// Get returns the visitor's stored preferences, or the necessary-only
// default when nothing was saved yet.
func (s *Service) Get(ctx context.Context, visitorID string) (*domain.ConsentRecord, error) {
	if strings.TrimSpace(visitorID) == "" {
		return nil, domain.NewValidationError("visitorId", "ไม่พบรหัสผู้เยี่ยมชม")
	}

	rec, err := s.records.Get(ctx, visitorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ConsentRecord{
				VisitorID:   visitorID,
				Preferences: domain.DefaultConsentPreferences(),
			}, nil
		}
		return nil, fmt.Errorf("get consent: %w", err)
	}
	return rec, nil
}

// Save stores the visitor's choices. Necessary cookies cannot be opted
// out of; the flag is forced on regardless of the submitted value.
func (s *Service) Save(ctx context.Context, visitorID string, prefs domain.ConsentPreferences) (*domain.ConsentRecord, error) {
	if strings.TrimSpace(visitorID) == "" {
		return nil, domain.NewValidationError("visitorId", "ไม่พบรหัสผู้เยี่ยมชม")
	}

	prefs.Necessary = true
	rec := domain.ConsentRecord{
		VisitorID:   visitorID,
		Preferences: prefs,
	}
	if err := s.records.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("save consent: %w", err)
	}

	s.log.DebugContext(ctx, "consent saved",
		slog.Bool("analytics", prefs.Analytics),
		slog.Bool("marketing", prefs.Marketing),
	)

	saved, err := s.records.Get(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("get consent: %w", err)
	}
	return saved, nil
}
