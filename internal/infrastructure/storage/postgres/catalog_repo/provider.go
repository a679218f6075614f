package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"cartera/internal/core/apperror"
	"cartera/internal/domain/catalogs/provider"
	"cartera/internal/infrastructure/storage/postgres"
)

const providerTable = "cat_providers"

// ProviderRepo implements provider.Repository.
type ProviderRepo struct {
	*BaseCatalogRepo[*provider.Provider]
}

// NewProviderRepo creates a new provider repository.
func NewProviderRepo(txm *postgres.TxManager) *ProviderRepo {
	return &ProviderRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*provider.Provider](
			txm,
			providerTable,
			postgres.ExtractDBColumns[provider.Provider](),
			func() *provider.Provider { return &provider.Provider{} },
		),
	}
}

// FindByTaxID retrieves provider by tax id.
func (r *ProviderRepo) FindByTaxID(ctx context.Context, taxID string) (*provider.Provider, error) {
	q, err := r.BaseSelect(ctx)
	if err != nil {
		return nil, err
	}
	q = q.Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	p, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("provider", taxID)
		}
		return nil, err
	}
	return p, nil
}
