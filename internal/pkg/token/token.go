// Package token issues and verifies the signed access tokens that carry an
// actor's identity and role between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"grameego/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingMethod = jwt.SigningMethodHS256

// ErrTokenExpired is returned when a token's lifetime has passed.
var ErrTokenExpired = errs.ErrSessionExpired

// Config holds the signing parameters for access tokens.
type Config struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// Claims is the payload carried by every access token. Role and ShopID let
// the HTTP layer authorize without a database round trip.
type Claims struct {
	AccountID uuid.UUID  `json:"accountId"`
	Role      string     `json:"role"`
	ShopID    *uuid.UUID `json:"shopId,omitempty"`

	jwt.RegisteredClaims
}

// Mint issues a signed token for the account.
func Mint(cfg Config, now time.Time, accountID uuid.UUID, role string, shopID *uuid.UUID) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("jwt secret is required")
	}
	if cfg.Issuer == "" {
		return "", errors.New("jwt issuer is required")
	}
	if cfg.ExpirationMinutes <= 0 {
		return "", errors.New("jwt expiration minutes must be positive")
	}

	claims := Claims{
		AccountID: accountID,
		Role:      role,
		ShopID:    shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// Parse validates the token string and returns its typed claims. Expired
// tokens are reported as ErrTokenExpired so callers can distinguish a stale
// session from a forged token.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	return claims, nil
}
