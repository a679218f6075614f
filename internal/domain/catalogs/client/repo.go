package client

import (
	"context"

	"cartera/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// FindByTaxID retrieves client by tax id (unique within a company).
	FindByTaxID(ctx context.Context, taxID string) (*Client, error)
}
