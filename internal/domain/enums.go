package domain

// SeverityLevel grades how advanced the answer to a topic is.
type SeverityLevel string

const (
	SeverityBasic        SeverityLevel = "basic"
	SeverityIntermediate SeverityLevel = "intermediate"
	SeverityAdvanced     SeverityLevel = "advanced"
)

func (s SeverityLevel) String() string { return string(s) }

func (s SeverityLevel) IsValid() bool {
	switch s {
	case SeverityBasic, SeverityIntermediate, SeverityAdvanced:
		return true
	}
	return false
}

// TopicStatus tracks a topic through the editorial workflow.
// Transitions are not state-machine-enforced: any valid value may be set
// via update, matching the site's loose editorial model.
type TopicStatus string

const (
	TopicStatusDraft     TopicStatus = "draft"
	TopicStatusPending   TopicStatus = "pending"
	TopicStatusApproved  TopicStatus = "approved"
	TopicStatusPublished TopicStatus = "published"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusDraft, TopicStatusPending, TopicStatusApproved, TopicStatusPublished:
		return true
	}
	return false
}

// EvidenceType classifies a citation attached to a topic.
type EvidenceType string

const (
	EvidenceQuran      EvidenceType = "quran"
	EvidenceHadith     EvidenceType = "hadith"
	EvidenceScholarly  EvidenceType = "scholarly"
	EvidenceHistorical EvidenceType = "historical"
	EvidenceScientific EvidenceType = "scientific"
)

func (t EvidenceType) String() string { return string(t) }

func (t EvidenceType) IsValid() bool {
	switch t {
	case EvidenceQuran, EvidenceHadith, EvidenceScholarly, EvidenceHistorical, EvidenceScientific:
		return true
	}
	return false
}

// UserRole determines what a user may do on the site.
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleScholar UserRole = "scholar"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleScholar, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may verify topic content.
func (r UserRole) CanReview() bool {
	return r == RoleScholar || r == RoleAdmin
}

// TokenPurpose distinguishes single-use auth tokens in the registry.
type TokenPurpose string

const (
	TokenPasswordReset TokenPurpose = "password_reset"
	TokenEmailVerify   TokenPurpose = "email_verify"
)

func (p TokenPurpose) String() string { return string(p) }

func (p TokenPurpose) IsValid() bool {
	switch p {
	case TokenPasswordReset, TokenEmailVerify:
		return true
	}
	return false
}
