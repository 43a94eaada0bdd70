package utils // package utils provides helpers for issuing and checking session tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// claim checks.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken is a signed JWT naming one session along with its expiry.
// Clients send it back as "Authorization: Bearer <token>".
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken signs an HS256 JWT whose subject is the session id.
// The token stays valid for ttl; the session itself may expire sooner if
// it is evicted from the store.
func NewSessionToken(secret, sessionID string, ttl time.Duration) (SessionToken, error) {
	return NewSessionTokenAt(secret, sessionID, time.Now(), ttl)
}

// NewSessionTokenAt is NewSessionToken issued at now.  Handlers reissue
// tokens on every session write so the token's expiry tracks the idle
// lifetime of the session.
func NewSessionTokenAt(secret, sessionID string, now time.Time, ttl time.Duration) (SessionToken, error) {
	now = now.UTC()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies raw with secret and returns the session id.
// Only HMAC-signed tokens are accepted.
func ParseSessionToken(secret, raw string) (string, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
