package security

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Init("test-secret", 1)

	token, err := GenerateToken(7, "ana@example.com", true)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("user_id = %d, want 7", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if !claims.IsAdmin {
		t.Error("is_admin lost in the round trip")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	Init("first-secret", 1)
	token, err := GenerateToken(7, "ana@example.com", false)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	Init("other-secret", 1)
	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	Init("test-secret", 1)
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("ValidateToken() accepted garbage")
	}
}

func TestExtractSignature(t *testing.T) {
	Init("test-secret", 1)
	token, err := GenerateToken(7, "ana@example.com", false)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	signature, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature() error = %v", err)
	}
	if !strings.HasSuffix(token, "."+signature) {
		t.Errorf("signature %q is not the token's last segment", signature)
	}

	if _, err := ExtractSignature("only.two"); err == nil {
		t.Error("ExtractSignature() accepted a malformed token")
	}
}
