package security

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery" {
		t.Error("Hash should not equal the plaintext password")
	}
	if !CheckPassword("correct horse battery", hash) {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword should reject a different password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.IssueToken(42, "player@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := tm.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.PlayerID != 42 {
		t.Errorf("Expected player ID 42, got %d", claims.PlayerID)
	}
	if claims.Email != "player@example.com" {
		t.Errorf("Expected email player@example.com, got %s", claims.Email)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour)
	other := NewTokenManager("secret-two", time.Hour)

	token, err := tm.IssueToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := other.VerifyToken(token); err == nil {
		t.Error("Expected verification to fail with a different secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.IssueToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := tm.VerifyToken(token); err == nil {
		t.Error("Expected verification to fail for an expired token")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Fourth request should be rejected")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("Different IP should have its own bucket")
	}
}
