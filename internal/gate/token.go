package gate

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and checks the expiry-dated unlock tokens handed to
// clients that passed the gate, so the prompt is skipped on later loads.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds an issuer. A non-positive ttl defaults to the
// 24-hour unlock validity.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the validity window of issued tokens.
func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// Issue signs an unlock token valid for the configured window.
func (t *TokenIssuer) Issue() (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"unlocked": true,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify reports whether a token is a valid, unexpired unlock token.
func (t *TokenIssuer) Verify(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	unlocked, _ := claims["unlocked"].(bool)
	return unlocked
}
