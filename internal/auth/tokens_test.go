package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rachitsingh/baatein/backend/internal/auth"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tokens := auth.NewSessionTokens("secret", time.Hour)

	token, err := tokens.Issue("u@example.com")
	if err != nil {
		t.Fatalf("Issue err: %v", err)
	}

	email, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if email != "u@example.com" {
		t.Fatalf("unexpected subject: %s", email)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := auth.NewSessionTokens("secret-a", time.Hour).Issue("u@example.com")
	if err != nil {
		t.Fatalf("Issue err: %v", err)
	}

	if _, err := auth.NewSessionTokens("secret-b", time.Hour).Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	tokens := auth.NewSessionTokens("secret", -time.Minute)

	token, err := tokens.Issue("u@example.com")
	if err != nil {
		t.Fatalf("Issue err: %v", err)
	}

	if _, err := tokens.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	tokens := auth.NewSessionTokens("secret", time.Hour)
	if _, err := tokens.Verify("not-a-token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestInsecureVerifier(t *testing.T) {
	v := auth.InsecureEmailVerifier{}

	email, err := v.VerifyEmail(" u@example.com ")
	if err != nil {
		t.Fatalf("VerifyEmail err: %v", err)
	}
	if email != "u@example.com" {
		t.Fatalf("unexpected email: %q", email)
	}

	if _, err := v.VerifyEmail("not-an-email"); !errors.Is(err, auth.ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}
}
