package auth

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret means the signing secret is not configured; guarded
	// endpoints reject while the rest of the service keeps running.
	ErrNoSecret = errors.New("token signing secret is not configured")
	// ErrInvalidToken covers structurally valid tokens that fail the
	// claim checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Principal is the verified identity attached to an incoming request for
// the duration of that request. It is never persisted.
type Principal struct {
	Subject string
	Email   string
}

// Verifier checks a bearer credential and yields the principal it names.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// Claims carried by locally issued access tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens against the signing
// secret. It implements Verifier; an external identity provider can be
// substituted behind the same interface without touching the guards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds the service. A non-positive ttl falls back to the
// default 12 hour token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &TokenService{secret: key, ttl: ttl}
}

// Issue signs an access token for the given email.
func (s *TokenService) Issue(email string) (string, error) {
	if s.secret == nil {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and extracts the principal.
func (s *TokenService) Verify(ctx context.Context, tokenStr string) (Principal, error) {
	if s.secret == nil {
		return Principal{}, ErrNoSecret
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Principal{}, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.Email == "" {
		return Principal{}, ErrInvalidToken
	}
	return Principal{Subject: claims.Subject, Email: claims.Email}, nil
}
