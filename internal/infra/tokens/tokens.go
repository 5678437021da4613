// Package tokens issues and verifies the signed bearer tokens that carry a
// user's identity between requests.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed token, bad
// signature, expiry. Callers treat all of them as "unauthenticated".
var ErrInvalidToken = errors.New("invalid or expired token")

const DefaultTTL = 24 * time.Hour

// Payload is the identity a token carries. Tokens are immutable: changing a
// claim means issuing a new token.
type Payload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Default is the process-wide service, set in main after config is loaded.
var Default *Service

func Init(secret string, ttl time.Duration) {
	Default = New(secret, ttl)
}

// Issue signs a token for the payload with the configured expiry.
func (s *Service) Issue(p Payload) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: p.UserID,
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the payload. Any failure
// maps to ErrInvalidToken; this function never panics on garbage input.
func (s *Service) Verify(tokenString string) (Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}
	return Payload{UserID: c.UserID, Email: c.Email}, nil
}
