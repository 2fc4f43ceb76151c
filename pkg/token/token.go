// Package token validates bearer tokens issued by the credential service.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload the credential service puts into its tokens.
// UserID is the opaque caller identity every team operation is keyed on.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

var (
	// ErrEmptyToken indicates that no token string was supplied.
	ErrEmptyToken = errors.New("token string is empty")
	// ErrExpiredToken indicates that the token has expired.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidToken indicates that the token failed verification.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrMissingUserID indicates that the user_id claim is absent.
	ErrMissingUserID = errors.New("user_id claim is missing")
)

// Validate parses and verifies an HS256 token and returns its claims.
func Validate(tokenString, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

// Generate signs a token for the given identity. The production issuer
// lives in the credential service; this exists for tests and local setups.
func Generate(userID, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
