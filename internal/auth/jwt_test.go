package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")
	claims := Claims{
		UserID: uuid.New(),
		Email:  "founder@arc.io",
		Role:   "user",
	}

	token, expiresAt, err := service.GenerateToken(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired")
	}

	parsed, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != claims.UserID || parsed.Email != claims.Email || parsed.Role != claims.Role {
		t.Errorf("claims round trip mismatch: %+v", parsed)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a").GenerateToken(Claims{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewJWTService("secret-b").ValidateToken(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	if _, err := NewJWTService("secret").ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	service := NewJWTService("test-secret")
	claims := Claims{UserID: uuid.New()}

	_, accessExpiry, err := service.GenerateToken(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, refreshExpiry, err := service.GenerateRefreshToken(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !refreshExpiry.After(accessExpiry) {
		t.Error("refresh token does not outlive the access token")
	}
}
