package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/apetrei/storefront/internal/domain"
	"github.com/apetrei/storefront/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-test-secret-key-1234"

func newTestAuthenticator(t *testing.T, duration time.Duration) *Authenticator {
	t.Helper()
	auth, err := NewAuthenticator(Config{
		SecretKey:     testSecret,
		TokenDuration: duration,
	})
	require.NoError(t, err)
	return auth
}

func TestNewAuthenticator_RejectsMissingKey(t *testing.T) {
	_, err := NewAuthenticator(Config{SecretKey: ""})
	assert.Error(t, err)
}

func TestNewAuthenticator_RejectsShortKey(t *testing.T) {
	_, err := NewAuthenticator(Config{SecretKey: "too-short"})
	assert.Error(t, err)
}

func TestCreateToken_ValidateRoundTrip(t *testing.T) {
	auth := newTestAuthenticator(t, time.Hour)

	account := &domain.Account{
		ID:    42,
		Email: "test@test.com",
		Role:  domain.RoleAdmin,
	}

	token, err := auth.CreateToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, email, role, err := auth.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "test@test.com", email)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	auth := newTestAuthenticator(t, time.Hour)

	_, _, _, err := auth.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	auth := newTestAuthenticator(t, -time.Minute)

	token, err := auth.CreateToken(&domain.Account{ID: 1, Email: "a@b.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, _, _, err = auth.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	auth := newTestAuthenticator(t, time.Hour)

	other, err := NewAuthenticator(Config{
		SecretKey:     "another-secret-key-another-secret-key",
		TokenDuration: time.Hour,
	})
	require.NoError(t, err)

	token, err := other.CreateToken(&domain.Account{ID: 1, Email: "a@b.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, _, _, err = auth.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}
