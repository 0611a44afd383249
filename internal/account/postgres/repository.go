// Package postgres provides the PostgreSQL implementation of the account repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/apetrei/storefront/internal/account"
	"github.com/apetrei/storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Repository implements the account.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const selectAccount = `
	SELECT id, email, first_name, last_name, password_hash, password_salt, role, created_at, updated_at
	FROM accounts
`

// ListAccounts retrieves all accounts ordered by id.
func (r *Repository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, selectAccount+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var a domain.Account
		if err := scanAccount(rows, &a); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by its id.
func (r *Repository) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	var a domain.Account
	err := scanAccount(r.db.QueryRow(ctx, selectAccount+` WHERE id = $1`, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &a, nil
}

// UpdateAccount persists the editable profile fields.
// Password hash/salt and role are deliberately outside this statement.
func (r *Repository) UpdateAccount(ctx context.Context, a *domain.Account) error {
	query := `
		UPDATE accounts
		SET email = $2, first_name = $3, last_name = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, a.ID, a.Email, a.FirstName, a.LastName).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.ErrAccountNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.ErrEmailExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// DeleteAccount removes an account by id.
func (r *Repository) DeleteAccount(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row, a *domain.Account) error {
	return row.Scan(
		&a.ID,
		&a.Email,
		&a.FirstName,
		&a.LastName,
		&a.PasswordHash,
		&a.PasswordSalt,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}
