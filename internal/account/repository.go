// Package account provides HTTP handlers and business logic for account management.
package account

import (
	"context"
	"errors"

	"github.com/apetrei/storefront/internal/domain"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailExists     = errors.New("email already registered")
)

// Repository defines the interface for account data operations.
type Repository interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	// UpdateAccount persists profile changes. Returns ErrEmailExists when the
	// new email collides with another account's.
	UpdateAccount(ctx context.Context, account *domain.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}
