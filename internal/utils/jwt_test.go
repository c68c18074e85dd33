package utils

import (
	"testing"
	"time"
)

const testSecret = "jwt-test-signing-key"

func init() {
	SetJWTSecret(testSecret)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(3, "moderator", "admin", 12)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned an empty token")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.UserID != 3 {
		t.Errorf("UserID = %d, expected 3", claims.UserID)
	}
	if claims.Username != "moderator" {
		t.Errorf("Username = %q, expected %q", claims.Username, "moderator")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, expected %q", claims.Role, "admin")
	}
}

func TestGenerateToken_DistinctPerUser(t *testing.T) {
	a, _ := GenerateToken(1, "moderator", "admin", 12)
	b, _ := GenerateToken(2, "reviewer", "user", 12)

	if a == b {
		t.Error("tokens for different users must differ")
	}
}

func TestGenerateToken_Expiry(t *testing.T) {
	token, _ := GenerateToken(1, "moderator", "admin", 2)
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		t.Fatal("fresh token must not already be expired")
	}
	if remaining < time.Hour || remaining > 3*time.Hour {
		t.Errorf("expiry in %v, expected about 2h", remaining)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "abcdef"},
		{"wrong segment count", "only.two"},
		{"broken signature", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token); err == nil {
				t.Errorf("ParseToken(%q) should fail", tt.token)
			}
		})
	}
}

func TestParseToken_RejectsForeignSecret(t *testing.T) {
	SetJWTSecret("some-other-deployment")
	token, _ := GenerateToken(1, "moderator", "admin", 12)

	SetJWTSecret(testSecret)
	defer SetJWTSecret(testSecret)

	if _, err := ParseToken(token); err == nil {
		t.Error("token signed under a different secret must not parse")
	}
}

func TestSetJWTSecret_ChangesSignature(t *testing.T) {
	defer SetJWTSecret(testSecret)

	SetJWTSecret("first")
	a, _ := GenerateToken(1, "moderator", "admin", 12)

	SetJWTSecret("second")
	b, _ := GenerateToken(1, "moderator", "admin", 12)

	if a == b {
		t.Error("the same claims under different secrets must produce different tokens")
	}
}
