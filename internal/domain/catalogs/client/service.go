package client

import (
	"context"
	"fmt"
	"time"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/core/tx"
	"cartera/internal/domain"
	"cartera/pkg/numerator"
)

// Service provides business logic for the Client catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Client]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks before create.
func (s *Service) prepareForCreate(ctx context.Context, c *Client) error {
	if c.Code == "" {
		cfg := numerator.DefaultConfig("CLI")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}

	if c.TaxID != nil && *c.TaxID != "" {
		exists, err := s.checkTaxIDExists(ctx, *c.TaxID, c.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("client with this tax id already exists").
				WithDetail("taxId", c.TaxID)
		}
	}

	return nil
}

// prepareForUpdate handles uniqueness checks before update.
func (s *Service) prepareForUpdate(ctx context.Context, c *Client) error {
	if c.TaxID != nil && *c.TaxID != "" {
		exists, err := s.checkTaxIDExists(ctx, *c.TaxID, c.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("client with this tax id already exists").
				WithDetail("taxId", c.TaxID)
		}
	}

	return nil
}

// FindByTaxID retrieves client by tax id.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Client, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

// checkTaxIDExists checks if the tax id is already used by another client.
func (s *Service) checkTaxIDExists(ctx context.Context, taxID string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByTaxID(ctx, taxID)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
