package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatal(err)
	}

	p, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if p.Email != "a@x.com" {
		t.Fatalf("wrong principal: %+v", p)
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(context.Background(), token+"x"); err == nil {
		t.Fatal("tampered token accepted")
	}

	other := NewTokenService("different-secret", time.Hour)
	if _, err := other.Verify(context.Background(), token); err == nil {
		t.Fatal("token accepted under wrong secret")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(context.Background(), expired); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestDisabledWithoutSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)

	if _, err := svc.Issue("a@x.com"); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("want ErrNoSecret, got %v", err)
	}
	if _, err := svc.Verify(context.Background(), "anything"); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("want ErrNoSecret, got %v", err)
	}
}
