// Package client provides the Client catalog: the account holders on the
// receivable (cartera) side.
package client

import (
	"context"
	"regexp"

	"cartera/internal/core/apperror"
	"cartera/internal/core/entity"
	"cartera/internal/core/types"
)

// Pre-compiled regex patterns for validation
var (
	taxIDRE = regexp.MustCompile(`^[A-Z0-9&Ñ]{10,13}$`)
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Client represents a customer whose orders, receipts and adjustments feed
// the receivable ledger.
type Client struct {
	entity.Catalog

	// TaxID is the fiscal identifier (RFC), unique within the company
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the billing address
	Address *string `db:"address" json:"address,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// CreditDays is the payment term; due date = document date + CreditDays
	CreditDays int `db:"credit_days" json:"creditDays"`

	// CreditLimit caps the outstanding balance (nil = no limit)
	CreditLimit *types.Money `db:"credit_limit" json:"creditLimit,omitempty"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewClient creates a new Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.TaxID != nil && *c.TaxID != "" && !taxIDRE.MatchString(*c.TaxID) {
		return apperror.NewValidation("invalid tax id format").
			WithDetail("field", "taxId").
			WithDetail("value", *c.TaxID)
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	if c.CreditDays < 0 {
		return apperror.NewValidation("credit days cannot be negative").
			WithDetail("field", "creditDays")
	}

	if c.CreditLimit != nil && c.CreditLimit.IsNegative() {
		return apperror.NewValidation("credit limit cannot be negative").
			WithDetail("field", "creditLimit")
	}

	return nil
}
