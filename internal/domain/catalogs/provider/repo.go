package provider

import (
	"context"

	"cartera/internal/domain"
)

// Repository defines the interface for Provider persistence.
type Repository interface {
	domain.CatalogRepository[*Provider]

	// FindByTaxID retrieves provider by tax id (unique within a company).
	FindByTaxID(ctx context.Context, taxID string) (*Provider, error)
}
