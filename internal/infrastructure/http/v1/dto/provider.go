package dto

import (
	"cartera/internal/domain/catalogs/provider"
)

// --- Request DTOs ---

// CreateProviderRequest is the request body for creating a provider.
type CreateProviderRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	TaxID       *string `json:"taxId"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bankAccount"`
	CreditDays  int     `json:"creditDays"`
	Comment     *string `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProviderRequest) ToEntity() *provider.Provider {
	p := provider.NewProvider(r.Code, r.Name)
	p.TaxID = r.TaxID
	p.Email = r.Email
	p.Phone = r.Phone
	p.Address = r.Address
	p.BankAccount = r.BankAccount
	p.CreditDays = r.CreditDays
	p.Comment = r.Comment
	return p
}

// UpdateProviderRequest is the request body for updating a provider.
type UpdateProviderRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	TaxID       *string `json:"taxId"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bankAccount"`
	CreditDays  int     `json:"creditDays"`
	Comment     *string `json:"comment"`
	Version     int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProviderRequest) ApplyTo(p *provider.Provider) {
	p.Code = r.Code
	p.Name = r.Name
	p.TaxID = r.TaxID
	p.Email = r.Email
	p.Phone = r.Phone
	p.Address = r.Address
	p.BankAccount = r.BankAccount
	p.CreditDays = r.CreditDays
	p.Comment = r.Comment
	p.Version = r.Version
}

// --- Response DTOs ---

// ProviderResponse is the response body for a provider.
type ProviderResponse struct {
	BaseResponse
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	TaxID       *string `json:"taxId,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	BankAccount *string `json:"bankAccount,omitempty"`
	CreditDays  int     `json:"creditDays"`
	Comment     *string `json:"comment,omitempty"`
}

// FromProvider creates response DTO from domain entity.
func FromProvider(p *provider.Provider) *ProviderResponse {
	return &ProviderResponse{
		BaseResponse: FromBaseCatalog(p.BaseCatalog),
		Code:         p.Code,
		Name:         p.Name,
		TaxID:        p.TaxID,
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		BankAccount:  p.BankAccount,
		CreditDays:   p.CreditDays,
		Comment:      p.Comment,
	}
}
