package domain

import "time"

// Product is a catalog item owned by an account.
// Uses is a free-form classification label ("kitchen", "garden", ...),
// queryable as a filter.
type Product struct {
	ID        int64
	Name      string
	Uses      string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductProjection is the externally visible shape of a product.
type ProductProjection struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Uses      string    `json:"uses"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectProduct maps a product to its public projection.
func ProjectProduct(p *Product) ProductProjection {
	return ProductProjection{
		ID:        p.ID,
		Name:      p.Name,
		Uses:      p.Uses,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
