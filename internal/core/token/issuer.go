// Package token issues and verifies the bearer tokens handed out at login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// ErrEmptySecret is returned by New when no signing secret is configured.
// Construction happens at startup, so a missing secret aborts boot instead of
// surfacing on the first login.
var ErrEmptySecret = errors.New("token: signing secret must not be empty")

// Claims is the decoded view of an issued token.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs HS256 bearer tokens carrying the username and role.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// New returns an Issuer signing with secret. ttl <= 0 falls back to
// DefaultTTL (7 days).
func New(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue builds and signs a token for the given identity. Expiry is the
// issuance instant plus the configured TTL.
func (i *Issuer) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: username,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the embedded claims.
// Tokens signed with any algorithm other than HS256 are rejected.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
