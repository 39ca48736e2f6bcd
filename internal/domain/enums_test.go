package domain

import "testing"

func TestTopicStatusIsValid(t *testing.T) {
	valid := []TopicStatus{TopicStatusDraft, TopicStatusPending, TopicStatusApproved, TopicStatusPublished}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TopicStatus("archived").IsValid() {
		t.Error("archived should be invalid")
	}
	if TopicStatus("").IsValid() {
		t.Error("empty status should be invalid")
	}
}

func TestSeverityLevelIsValid(t *testing.T) {
	for _, s := range []SeverityLevel{SeverityBasic, SeverityIntermediate, SeverityAdvanced} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if SeverityLevel("expert").IsValid() {
		t.Error("expert should be invalid")
	}
}

func TestEvidenceTypeIsValid(t *testing.T) {
	for _, e := range []EvidenceType{EvidenceQuran, EvidenceHadith, EvidenceScholarly, EvidenceHistorical, EvidenceScientific} {
		if !e.IsValid() {
			t.Errorf("%s should be valid", e)
		}
	}
	if EvidenceType("blog").IsValid() {
		t.Error("blog should be invalid")
	}
}

func TestUserRoleCanReview(t *testing.T) {
	if RoleUser.CanReview() {
		t.Error("user must not review")
	}
	if !RoleScholar.CanReview() {
		t.Error("scholar must review")
	}
	if !RoleAdmin.CanReview() {
		t.Error("admin must review")
	}
}
