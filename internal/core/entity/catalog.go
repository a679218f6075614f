package entity

import (
	"context"

	"cartera/internal/core/apperror"
)

// Catalog is the base type for reference data: clients, providers.
type Catalog struct {
	BaseCatalog

	// Code is a human-readable identifier (unique within a company)
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseCatalog: NewBaseCatalog(),
		Code:        code,
		Name:        name,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code can be assigned by the caller later, so it stays optional here.

	return nil
}
