// Package jwttest mints signed session tokens for tests.
package jwttest

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/lexcomply/admin/pkg/jwt"
)

// Sign issues an HS256 token for c that expires ttl from now. A negative ttl
// yields a token that has already expired.
func Sign(key string, c jwt.Claims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	c.IssuedAt = jwtlib.NewNumericDate(now)
	c.ExpiresAt = jwtlib.NewNumericDate(now.Add(ttl))

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, &c).SignedString([]byte(key))
}
