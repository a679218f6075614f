package reports

import (
	"context"
)

// Repository defines report data access interface.
type Repository interface {
	// ListOpenDocuments returns unpaid documents with outstanding balances
	// for the filter's side and accounts. Classification happens in the
	// service, not in SQL.
	ListOpenDocuments(ctx context.Context, filter AgingReportFilter) ([]OpenDocument, error)
}
