// Package tx defines the transaction management contract used by services.
// The PostgreSQL implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager runs functions within a database transaction.
// Nested calls reuse the transaction already present in ctx.
type Manager interface {
	// RunInTransaction executes fn within a transaction.
	// The transaction is committed if fn returns nil, rolled back otherwise.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
