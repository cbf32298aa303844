package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the credential lifetime fixed at issuance. Tokens are
// not refreshed by use; re-issuance happens only via a fresh login.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired marks a structurally valid token past its expiry claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed marks a token whose signature or structure is invalid.
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenService issues and verifies signed bearer credentials. The signing
// secret is injected at construction; nothing here reads ambient state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService with the given secret and token
// lifetime. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints an HS256 token binding userID to an issued-at and expiry claim.
func (t *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the bound user id.
// Expired and malformed tokens fail with distinguishable errors so logs and
// tests can tell them apart; callers treat both as a rejection.
func (t *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
