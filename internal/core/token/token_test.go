package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

func TestNewIssuer_EmptySecret(t *testing.T) {
	if _, err := NewIssuer("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	kinds := []domain.PrincipalKind{domain.KindUser, domain.KindExpert, domain.KindAdmin}
	for _, kind := range kinds {
		signed, err := issuer.Issue("abc123", kind)
		if err != nil {
			t.Fatalf("Issue(%s): %v", kind, err)
		}

		claims, err := issuer.Verify(signed)
		if err != nil {
			t.Fatalf("Verify(%s): %v", kind, err)
		}
		if claims.PrincipalID != "abc123" {
			t.Fatalf("unexpected principal id: %s", claims.PrincipalID)
		}
		if claims.Kind != kind {
			t.Fatalf("expected kind %s, got %s", kind, claims.Kind)
		}
	}
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)
	other, _ := NewIssuer("different", time.Hour)

	signed, err := issuer.Issue("abc123", domain.KindUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := other.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Verify_Expired(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	now := time.Now().Add(-2 * time.Hour)
	claims := jwt.MapClaims{
		"sub":  "abc123",
		"type": string(domain.KindUser),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Verify_Malformed(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	if _, err := issuer.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Verify_UnknownKind(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "abc123",
		"type": "superuser",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Issue_TokensDistinct(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	first, err := issuer.Issue("abc123", domain.KindUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	second, err := issuer.Issue("abc123", domain.KindUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct tokens for separate logins")
	}
	if _, err := issuer.Verify(first); err != nil {
		t.Fatalf("first token should stay valid: %v", err)
	}
	if _, err := issuer.Verify(second); err != nil {
		t.Fatalf("second token should stay valid: %v", err)
	}
}
