package identity

import (
	"context"

	"github.com/apetrei/storefront/internal/domain"
)

// Repository defines the interface for identity data operations.
type Repository interface {
	// CreateAccount persists a new account and fills in its generated id and
	// timestamps. Returns ErrEmailExists if the email is already taken; the
	// database unique constraint is the arbiter for concurrent registrations.
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
}
