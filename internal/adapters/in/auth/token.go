// Package auth resolves bearer tokens into callers. Tokens are HS256 JWTs
// whose subject is the user id and whose "role" claim is the user's role.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenIsInvalid = errors.New("bearer token is invalid")

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	Role kernel.Role `json:"role"`
}

// TokenVerifier checks tokens signed with a shared secret.
type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenVerifier{secret: []byte(secret), now: time.Now}, nil
}

// Verify parses token and returns the caller it was issued for.
func (v *TokenVerifier) Verify(token string) (kernel.Caller, error) {
	if token == "" {
		return kernel.Caller{}, ErrTokenIsInvalid
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return kernel.Caller{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Caller{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	caller, err := kernel.NewCaller(id, claims.Role)
	if err != nil {
		return kernel.Caller{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	return caller, nil
}

// Issue signs a token for caller valid for ttl. The service itself never
// logs users in; this is used by the token command and by tests.
func (v *TokenVerifier) Issue(caller kernel.Caller, ttl time.Duration) (string, error) {
	if err := caller.Validate(); err != nil {
		return "", err
	}
	now := v.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: caller.Role(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
