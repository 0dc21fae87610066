// Package jwt reads the claims of session tokens issued by the backend.
package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

var ErrExpired = errors.New("session token expired")

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`

	jwtlib.RegisteredClaims
}

// Parse decodes a token without checking its signature; the client never
// holds the signing key.
func Parse(token string) (*Claims, error) {
	var c Claims

	if _, _, err := jwtlib.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	return &c, nil
}

// Expired is false for tokens that carry no expiry.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}

	return !now.Before(c.ExpiresAt.Time)
}

func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil || c.Expired(now) {
		return 0
	}

	return c.ExpiresAt.Time.Sub(now)
}

func (c *Claims) Identity() string {
	if c.UserID != "" {
		return c.UserID
	}

	return c.RegisteredClaims.Subject
}
