// Package jwt provides JWT-based token issuance and validation.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/apetrei/storefront/internal/domain"
	"github.com/apetrei/storefront/internal/identity"
	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLength is the minimum accepted signing key length in bytes.
// HS256 keys shorter than the hash output size weaken the MAC.
const MinSecretKeyLength = 32

// Config contains JWT authenticator configuration.
type Config struct {
	SecretKey     string
	TokenDuration time.Duration
}

// Claims are the identity claims carried by an access token.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator issues and validates signed bearer tokens.
// The signing key is fixed at construction and never mutated.
type Authenticator struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewAuthenticator creates a new JWT authenticator.
// Returns an error if the signing key is missing or too short, so the
// process refuses to start with a weak configuration.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt: secret key is required")
	}
	if len(cfg.SecretKey) < MinSecretKeyLength {
		return nil, fmt.Errorf("jwt: secret key must be at least %d bytes", MinSecretKeyLength)
	}

	duration := cfg.TokenDuration
	if duration == 0 {
		duration = 24 * time.Hour
	}

	return &Authenticator{
		secretKey:     []byte(cfg.SecretKey),
		tokenDuration: duration,
	}, nil
}

// CreateToken issues a token binding the account's id, email, and role.
func (a *Authenticator) CreateToken(account *domain.Account) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: account.Email,
		Role:  account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning the embedded identity.
func (a *Authenticator) ValidateToken(_ context.Context, tokenString string) (int64, string, domain.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secretKey, nil
	})
	if err != nil {
		return 0, "", "", identity.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", "", identity.ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", "", identity.ErrInvalidToken
	}

	if !claims.Role.Valid() {
		return 0, "", "", identity.ErrInvalidToken
	}

	return accountID, claims.Email, claims.Role, nil
}
