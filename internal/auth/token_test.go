package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestTokenManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewTokenManager(testSecret, "haqqvault-test", 15*time.Minute)
	userID := uuid.New()

	token, err := manager.GenerateSessionToken(userID, "user")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	validatedID, role, err := manager.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken failed: %v", err)
	}
	if validatedID != userID {
		t.Errorf("expected userID %s, got %s", userID, validatedID)
	}
	if role != "user" {
		t.Errorf("expected role 'user', got %q", role)
	}
}

func TestTokenManager_RoleClaimSurvives(t *testing.T) {
	manager := NewTokenManager(testSecret, "haqqvault-test", 15*time.Minute)

	token, err := manager.GenerateSessionToken(uuid.New(), "scholar")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	_, role, err := manager.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken failed: %v", err)
	}
	if role != "scholar" {
		t.Errorf("expected role 'scholar', got %q", role)
	}
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	manager := NewTokenManager(testSecret, "haqqvault-test", -time.Hour)

	token, err := manager.GenerateSessionToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, _, err := manager.ValidateSessionToken(token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	m1 := NewTokenManager(testSecret, "haqqvault-test", 15*time.Minute)
	m2 := NewTokenManager("different-secret-32-chars-long-for-security!!", "haqqvault-test", 15*time.Minute)

	token, err := m1.GenerateSessionToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, _, err := m2.ValidateSessionToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestTokenManager_Validate_WrongIssuer(t *testing.T) {
	m1 := NewTokenManager(testSecret, "issuer-a", 15*time.Minute)
	m2 := NewTokenManager(testSecret, "issuer-b", 15*time.Minute)

	token, err := m1.GenerateSessionToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, _, err := m2.ValidateSessionToken(token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestTokenManager_Validate_Empty(t *testing.T) {
	manager := NewTokenManager(testSecret, "haqqvault-test", 15*time.Minute)
	if _, _, err := manager.ValidateSessionToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestGenerateOpaqueToken(t *testing.T) {
	manager := NewTokenManager(testSecret, "haqqvault-test", 15*time.Minute)

	raw, hash, err := manager.GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("GenerateOpaqueToken failed: %v", err)
	}
	if raw == "" || hash == "" {
		t.Fatal("expected non-empty raw token and hash")
	}
	if HashToken(raw) != hash {
		t.Error("hash must equal HashToken(raw)")
	}

	raw2, hash2, err := manager.GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("GenerateOpaqueToken failed: %v", err)
	}
	if raw == raw2 || hash == hash2 {
		t.Error("two generated tokens must differ")
	}
}
