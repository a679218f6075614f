package provider

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

// Service provides business logic for the Provider catalog.
type Service struct {
	*domain.CatalogService[*Provider]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Provider service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Provider]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "provider",
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

func (s *Service) prepareForCreate(ctx context.Context, p *Provider) error {
	if p.Code == "" {
		cfg := numerator.DefaultConfig("PROV")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}

	return s.checkTaxIDUnique(ctx, p)
}

func (s *Service) prepareForUpdate(ctx context.Context, p *Provider) error {
	return s.checkTaxIDUnique(ctx, p)
}

func (s *Service) checkTaxIDUnique(ctx context.Context, p *Provider) error {
	if p.TaxID == nil || *p.TaxID == "" {
		return nil
	}
	exists, err := s.checkTaxIDExists(ctx, *p.TaxID, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewConflict("provider with this tax id already exists").
			WithDetail("taxId", p.TaxID)
	}
	return nil
}

// FindByTaxID retrieves provider by tax id.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Provider, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

func (s *Service) checkTaxIDExists(ctx context.Context, taxID string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByTaxID(ctx, taxID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
