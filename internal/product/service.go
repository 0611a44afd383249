package product

import (
	"context"
	"fmt"

	"github.com/apetrei/storefront/internal/domain"
)

// Service implements product business logic.
type Service struct {
	repo Repository
}

// NewService creates a new product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput holds data for creating a product.
type CreateInput struct {
	Name string
	Uses string
}

// CreateProduct creates a product owned by the calling account.
func (s *Service) CreateProduct(ctx context.Context, ownerID int64, input CreateInput) (*domain.ProductProjection, error) {
	product := &domain.Product{
		Name:    input.Name,
		Uses:    input.Uses,
		OwnerID: ownerID,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	projection := domain.ProjectProduct(product)
	return &projection, nil
}

// ListProducts returns projections of all products matching the filter.
func (s *Service) ListProducts(ctx context.Context, filter Filter) ([]domain.ProductProjection, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	projections := make([]domain.ProductProjection, 0, len(products))
	for i := range products {
		projections = append(projections, domain.ProjectProduct(&products[i]))
	}
	return projections, nil
}

// GetProductByID returns the projection of a single product.
func (s *Service) GetProductByID(ctx context.Context, id int64) (*domain.ProductProjection, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projection := domain.ProjectProduct(product)
	return &projection, nil
}

// UpdateInput holds the editable product fields. Nil fields are left unchanged.
type UpdateInput struct {
	Name *string
	Uses *string
}

// UpdateProduct applies changes to a product. Only the owning account or an
// admin may modify a product; ownership itself is not transferable here.
func (s *Service) UpdateProduct(ctx context.Context, callerID int64, callerRole domain.Role, id int64, input UpdateInput) (*domain.ProductProjection, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.OwnerID != callerID && !callerRole.HasPermission(domain.RoleAdmin) {
		return nil, ErrNotOwner
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Uses != nil {
		product.Uses = *input.Uses
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	projection := domain.ProjectProduct(product)
	return &projection, nil
}

// DeleteProduct removes a product, subject to the same ownership rule as updates.
func (s *Service) DeleteProduct(ctx context.Context, callerID int64, callerRole domain.Role, id int64) error {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	if product.OwnerID != callerID && !callerRole.HasPermission(domain.RoleAdmin) {
		return ErrNotOwner
	}

	return s.repo.DeleteProduct(ctx, id)
}
