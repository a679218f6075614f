package dto

import (
	"cartera/internal/core/types"
	"cartera/internal/domain/catalogs/client"
)

// --- Request DTOs ---

// CreateClientRequest is the request body for creating a client.
type CreateClientRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	TaxID         *string `json:"taxId"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	CreditDays    int     `json:"creditDays"`
	CreditLimit   *string `json:"creditLimit"`
	Comment       *string `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClientRequest) ToEntity() (*client.Client, error) {
	c := client.NewClient(r.Code, r.Name)
	c.TaxID = r.TaxID
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.ContactPerson = r.ContactPerson
	c.CreditDays = r.CreditDays
	c.Comment = r.Comment

	if r.CreditLimit != nil {
		limit, err := types.NewMoneyFromString(*r.CreditLimit)
		if err != nil {
			return nil, err
		}
		c.CreditLimit = &limit
	}

	return c, nil
}

// UpdateClientRequest is the request body for updating a client.
type UpdateClientRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	TaxID         *string `json:"taxId"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	CreditDays    int     `json:"creditDays"`
	CreditLimit   *string `json:"creditLimit"`
	Comment       *string `json:"comment"`
	Version       int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) error {
	c.Code = r.Code
	c.Name = r.Name
	c.TaxID = r.TaxID
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.ContactPerson = r.ContactPerson
	c.CreditDays = r.CreditDays
	c.Comment = r.Comment
	c.Version = r.Version

	c.CreditLimit = nil
	if r.CreditLimit != nil {
		limit, err := types.NewMoneyFromString(*r.CreditLimit)
		if err != nil {
			return err
		}
		c.CreditLimit = &limit
	}

	return nil
}

// --- Response DTOs ---

// ClientResponse is the response body for a client.
type ClientResponse struct {
	BaseResponse
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	TaxID         *string `json:"taxId,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	CreditDays    int     `json:"creditDays"`
	CreditLimit   *string `json:"creditLimit,omitempty"`
	Comment       *string `json:"comment,omitempty"`
}

// FromClient creates response DTO from domain entity.
func FromClient(c *client.Client) *ClientResponse {
	resp := &ClientResponse{
		BaseResponse:  FromBaseCatalog(c.BaseCatalog),
		Code:          c.Code,
		Name:          c.Name,
		TaxID:         c.TaxID,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		CreditDays:    c.CreditDays,
		Comment:       c.Comment,
	}

	if c.CreditLimit != nil {
		s := c.CreditLimit.String()
		resp.CreditLimit = &s
	}

	return resp
}
