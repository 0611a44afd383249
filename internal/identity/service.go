// Package identity provides registration, login, and identity lookup.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apetrei/storefront/internal/domain"
	"github.com/apetrei/storefront/internal/pkg/ctxlog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PasswordHasher derives and verifies salted password hashes.
type PasswordHasher interface {
	Hash(password string) (hashed, salt []byte, err error)
	Verify(password string, storedHash, storedSalt []byte) bool
}

// Authenticator issues and validates bearer tokens.
type Authenticator interface {
	CreateToken(account *domain.Account) (string, error)
	ValidateToken(ctx context.Context, token string) (accountID int64, email string, role domain.Role, err error)
}

// EmailVerifier checks whether an email address is deliverable.
// An external collaborator; implementations may be remote services.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email string) (bool, error)
}

// Service implements the authentication flow.
type Service struct {
	repo     Repository
	hasher   PasswordHasher
	auth     Authenticator
	verifier EmailVerifier
}

// NewService creates a new identity service. verifier may be nil, in which
// case only the handler-level syntactic email validation applies.
func NewService(repo Repository, hasher PasswordHasher, auth Authenticator, verifier EmailVerifier) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		auth:     auth,
		verifier: verifier,
	}
}

// NormalizeEmail lowercases and trims an email address so that uniqueness
// checks are case-insensitive. Unicode-aware lowering handles non-ASCII
// local parts and internationalized domains.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// RegisterInput holds data for registering a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new account with the lowest privilege role.
// Returns ErrInvalidEmail if the deliverability check rejects the address and
// ErrEmailExists if the email is taken. The pre-check is advisory only: the
// repository maps the store's unique-constraint violation to ErrEmailExists,
// which settles concurrent registrations for the same email.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.AccountProjection, error) {
	email := NormalizeEmail(input.Email)

	if s.verifier != nil {
		ok, err := s.verifier.VerifyEmail(ctx, email)
		if err != nil {
			// The verifier is a remote collaborator; its outage must not
			// block registration.
			ctxlog.FromContext(ctx).Warn("email verification unavailable", "error", err)
		} else if !ok {
			return nil, ErrInvalidEmail
		}
	}

	_, err := s.repo.GetAccountByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hashed, salt, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashed,
		PasswordSalt: salt,
		Role:         domain.RoleUser,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	projection := domain.ProjectAccount(account)
	return &projection, nil
}

// LoginInput holds login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller:
// both return ErrInvalidCredentials, so responses cannot be used to
// enumerate registered accounts.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, *domain.AccountProjection, error) {
	account, err := s.repo.GetAccountByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup account: %w", err)
	}

	if !s.hasher.Verify(input.Password, account.PasswordHash, account.PasswordSalt) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.auth.CreateToken(account)
	if err != nil {
		return "", nil, fmt.Errorf("create token: %w", err)
	}

	projection := domain.ProjectAccount(account)
	return token, &projection, nil
}

// GetAccountByID returns the projection of the account with the given id.
func (s *Service) GetAccountByID(ctx context.Context, id int64) (*domain.AccountProjection, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projection := domain.ProjectAccount(account)
	return &projection, nil
}

// ValidateToken implements the token validation used by the auth middleware.
func (s *Service) ValidateToken(ctx context.Context, token string) (int64, string, domain.Role, error) {
	return s.auth.ValidateToken(ctx, token)
}
