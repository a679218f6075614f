package cartera

import (
	"context"

	"cartera/internal/core/id"
	"cartera/internal/domain/ledger"
)

// MovementRepository defines access to the raw movement streams a statement
// is built from. Implementations return movements unordered; ordering and
// grouping belong to the ledger aggregation.
type MovementRepository interface {
	// ListClientMovements returns the receivable movements of one client.
	ListClientMovements(ctx context.Context, clientID id.ID, filter StatementFilter) ([]ledger.Movement, error)

	// ListProviderMovements returns the payable movements of one provider.
	ListProviderMovements(ctx context.Context, providerID id.ID, filter StatementFilter) ([]ledger.Movement, error)
}
