package jwt

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateTokenClaims(t *testing.T) {
	issued := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc := NewHMACServiceWithClock(fixedClock(issued))

	token, err := svc.GenerateToken("admin", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want admin", claims.Username)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role = %q, want %q", claims.Role, RoleAdmin)
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != TokenLifetime {
		t.Errorf("expiry window = %v, want %v", got, TokenLifetime)
	}
	if !claims.IssuedAt.Time.Equal(issued) {
		t.Errorf("iat = %v, want %v", claims.IssuedAt.Time, issued)
	}
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	svc := NewHMACService()
	if _, err := svc.GenerateToken("admin", ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	issued := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc := NewHMACServiceWithClock(fixedClock(issued))

	token, err := svc.GenerateToken("admin", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	later := NewHMACServiceWithClock(fixedClock(issued.Add(TokenLifetime + time.Minute)))
	if _, err := later.ValidateToken(token, testSecret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenStillValidBeforeExpiry(t *testing.T) {
	issued := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc := NewHMACServiceWithClock(fixedClock(issued))

	token, err := svc.GenerateToken("admin", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	later := NewHMACServiceWithClock(fixedClock(issued.Add(TokenLifetime - time.Minute)))
	if _, err := later.ValidateToken(token, testSecret); err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewHMACService()

	token, err := svc.GenerateToken("admin", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token, "other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewHMACService()
	if _, err := svc.ValidateToken("not.a.token", testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
