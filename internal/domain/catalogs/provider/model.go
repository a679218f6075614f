// Package provider provides the Provider catalog: the account holders on the
// payable side (facturas de proveedor).
package provider

import (
	"context"
	"regexp"

	"cartera/internal/core/apperror"
	"cartera/internal/core/entity"
)

var (
	taxIDRE = regexp.MustCompile(`^[A-Z0-9&Ñ]{10,13}$`)
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Provider represents a supplier whose invoices, payments and credit notes
// feed the payable ledger.
type Provider struct {
	entity.Catalog

	// TaxID is the fiscal identifier (RFC), unique within the company
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the fiscal address
	Address *string `db:"address" json:"address,omitempty"`

	// BankAccount is the account payments are sent to
	BankAccount *string `db:"bank_account" json:"bankAccount,omitempty"`

	// CreditDays is the payment term granted by the provider
	CreditDays int `db:"credit_days" json:"creditDays"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewProvider creates a new Provider with required fields.
func NewProvider(code, name string) *Provider {
	return &Provider{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (p *Provider) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.TaxID != nil && *p.TaxID != "" && !taxIDRE.MatchString(*p.TaxID) {
		return apperror.NewValidation("invalid tax id format").
			WithDetail("field", "taxId").
			WithDetail("value", *p.TaxID)
	}

	if p.Email != nil && *p.Email != "" && !emailRE.MatchString(*p.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	if p.CreditDays < 0 {
		return apperror.NewValidation("credit days cannot be negative").
			WithDetail("field", "creditDays")
	}

	return nil
}
