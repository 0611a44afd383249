package account

import (
	"context"
	"fmt"

	"github.com/apetrei/storefront/internal/domain"
	"github.com/apetrei/storefront/internal/identity"
)

// Service implements account business logic.
type Service struct {
	repo Repository
}

// NewService creates a new account service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAccounts returns projections of all accounts.
func (s *Service) ListAccounts(ctx context.Context) ([]domain.AccountProjection, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	projections := make([]domain.AccountProjection, 0, len(accounts))
	for i := range accounts {
		projections = append(projections, domain.ProjectAccount(&accounts[i]))
	}
	return projections, nil
}

// GetAccountByID returns the projection of a single account.
func (s *Service) GetAccountByID(ctx context.Context, id int64) (*domain.AccountProjection, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projection := domain.ProjectAccount(account)
	return &projection, nil
}

// EditInput holds the editable account fields. Nil fields are left unchanged.
// Id, password hash/salt, and role are not editable through this path.
type EditInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// EditOwnAccount applies profile changes to the account with the given id.
// The id always comes from the authenticated identity, never from the client.
func (s *Service) EditOwnAccount(ctx context.Context, id int64, input EditInput) (*domain.AccountProjection, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.Email != nil {
		account.Email = identity.NormalizeEmail(*input.Email)
	}

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	projection := domain.ProjectAccount(account)
	return &projection, nil
}

// DeleteAccountByID removes an account. Admin-gated at the routing layer.
func (s *Service) DeleteAccountByID(ctx context.Context, id int64) error {
	return s.repo.DeleteAccount(ctx, id)
}
