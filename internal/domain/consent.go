package domain

import "time"

// ConsentPreferences holds per-visitor cookie consent choices.
// Necessary is always true; the site cannot function without it.
type ConsentPreferences struct {
	Necessary  bool
	Analytics  bool
	Marketing  bool
	Functional bool
}

// DefaultConsentPreferences returns the pre-consent state: only the
// necessary category enabled.
func DefaultConsentPreferences() ConsentPreferences {
	return ConsentPreferences{Necessary: true}
}

// ConsentRecord binds preferences to an anonymous visitor with the
// consent timestamp required by PDPA.
type ConsentRecord struct {
	VisitorID   string
	Preferences ConsentPreferences
	ConsentedAt time.Time
}
