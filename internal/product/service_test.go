package product

import (
	"context"
	"testing"

	"github.com/apetrei/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newMockRepository(products ...*domain.Product) *mockRepository {
	m := &mockRepository{products: make(map[int64]*domain.Product), nextID: 1}
	for _, p := range products {
		m.products[p.ID] = p
		if p.ID >= m.nextID {
			m.nextID = p.ID + 1
		}
	}
	return m
}

func (m *mockRepository) CreateProduct(_ context.Context, p *domain.Product) error {
	p.ID = m.nextID
	m.nextID++
	copied := *p
	m.products[p.ID] = &copied
	return nil
}

func (m *mockRepository) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, ErrProductNotFound
}

func (m *mockRepository) ListProducts(_ context.Context, filter Filter) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for _, p := range m.products {
		if filter.Use == "" || p.Uses == filter.Use {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockRepository) UpdateProduct(_ context.Context, p *domain.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return ErrProductNotFound
	}
	copied := *p
	m.products[p.ID] = &copied
	return nil
}

func (m *mockRepository) DeleteProduct(_ context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestCreateProduct_OwnerIsCaller(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), 7, CreateInput{
		Name: "Product",
		Uses: "kitchen",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.OwnerID)
	assert.Equal(t, "Product", created.Name)
	assert.NotZero(t, created.ID)
}

func TestListProducts_FilterByUse(t *testing.T) {
	repo := newMockRepository(
		&domain.Product{ID: 10, Name: "Product", Uses: "test", OwnerID: 1},
		&domain.Product{ID: 11, Name: "Other", Uses: "garden", OwnerID: 1},
	)
	service := NewService(repo)

	products, err := service.ListProducts(context.Background(), Filter{Use: "test"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Product", products[0].Name)

	all, err := service.ListProducts(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetProductByID(t *testing.T) {
	repo := newMockRepository(&domain.Product{ID: 10, Name: "Product", OwnerID: 1})
	service := NewService(repo)

	p, err := service.GetProductByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Product", p.Name)

	_, err = service.GetProductByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProduct_OwnerCanEdit(t *testing.T) {
	repo := newMockRepository(&domain.Product{ID: 10, Name: "Product", Uses: "old", OwnerID: 1})
	service := NewService(repo)

	updated, err := service.UpdateProduct(context.Background(), 1, domain.RoleUser, 10, UpdateInput{
		Uses: strptr("new"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new", updated.Uses)
	assert.Equal(t, "Product", updated.Name, "nil fields unchanged")
}

func TestUpdateProduct_StrangerForbidden(t *testing.T) {
	repo := newMockRepository(&domain.Product{ID: 10, Name: "Product", OwnerID: 1})
	service := NewService(repo)

	_, err := service.UpdateProduct(context.Background(), 2, domain.RoleUser, 10, UpdateInput{
		Name: strptr("hijacked"),
	})

	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, "Product", repo.products[10].Name)
}

func TestUpdateProduct_AdminOverridesOwnership(t *testing.T) {
	repo := newMockRepository(&domain.Product{ID: 10, Name: "Product", OwnerID: 1})
	service := NewService(repo)

	updated, err := service.UpdateProduct(context.Background(), 2, domain.RoleAdmin, 10, UpdateInput{
		Name: strptr("moderated"),
	})

	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Name)
	assert.Equal(t, int64(1), updated.OwnerID, "ownership is not transferable")
}

func TestDeleteProduct_OwnershipEnforced(t *testing.T) {
	repo := newMockRepository(&domain.Product{ID: 10, OwnerID: 1})
	service := NewService(repo)

	err := service.DeleteProduct(context.Background(), 2, domain.RoleUser, 10)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, service.DeleteProduct(context.Background(), 1, domain.RoleUser, 10))
	assert.Empty(t, repo.products)

	err = service.DeleteProduct(context.Background(), 1, domain.RoleUser, 10)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
