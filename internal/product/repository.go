// Package product provides HTTP handlers and business logic for the product catalog.
package product

import (
	"context"
	"errors"

	"github.com/apetrei/storefront/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("product belongs to another account")
)

// Filter narrows product listings.
type Filter struct {
	// Use filters by the uses classification; empty means no filter.
	Use string
}

// Repository defines the interface for product data operations.
type Repository interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, filter Filter) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}
