// Package report_repo provides PostgreSQL implementations for report queries.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"cartera/internal/core/apperror"
	appctx "cartera/internal/core/context"
	"cartera/internal/domain/ledger"
	"cartera/internal/domain/reports"
	"cartera/internal/infrastructure/storage/postgres"
)

const movementsTable = "reg_movements"

// ReportRepo implements reports.Repository over the movement register.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType

	// adjustmentSign is the SQL sign for policy-governed kinds, fixed at
	// construction so storage and aggregation agree on one convention.
	adjustmentSign int
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager, policy ledger.AdjustmentPolicy) *ReportRepo {
	sign := -1
	if policy == ledger.AdjustmentsAdd {
		sign = 1
	}
	return &ReportRepo{
		txm:            txm,
		builder:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		adjustmentSign: sign,
	}
}

// ListOpenDocuments returns referenced documents with a non-zero outstanding
// balance and a due date. The per-document balance folds every movement that
// carries the document's reference, signed the same way the aggregation
// signs group totals.
func (r *ReportRepo) ListOpenDocuments(ctx context.Context, filter reports.AgingReportFilter) ([]reports.OpenDocument, error) {
	companyID := appctx.GetCompanyID(ctx)
	if companyID == "" {
		return nil, apperror.NewUnauthorized("company scope is missing")
	}

	accountTable := "cat_clients"
	if filter.Side == ledger.SidePayable {
		accountTable = "cat_providers"
	}

	signedAmount := fmt.Sprintf(`CASE
		WHEN m.kind IN ('ORDER', 'INVOICE') THEN m.amount
		WHEN m.kind IN ('RECEIPT', 'PAYMENT', 'CREDIT_NOTE') THEN -m.amount
		ELSE %d * m.amount
	END`, r.adjustmentSign)

	q := r.builder.
		Select(
			"m.account_id",
			"a.code AS account_code",
			"a.name AS account_name",
			// The kind and due date of the opening (balance-increasing) entry.
			"MIN(m.kind) FILTER (WHERE m.due_date IS NOT NULL) AS kind",
			"m.reference",
			"MIN(m.date) AS issue_date",
			"MAX(m.due_date) AS due_date",
			fmt.Sprintf("SUM(%s) AS balance", signedAmount),
			"MIN(m.currency) AS currency",
		).
		From(movementsTable+" m").
		Join(accountTable+" a ON a.id = m.account_id").
		Where(squirrel.Eq{"m.company_id": companyID}).
		Where(squirrel.Eq{"m.side": filter.Side}).
		Where(squirrel.NotEq{"m.reference": ""})

	if filter.AsOfDate != nil {
		q = q.Where(squirrel.LtOrEq{"m.date": *filter.AsOfDate})
	}
	if len(filter.AccountIDs) > 0 {
		q = q.Where(squirrel.Eq{"m.account_id": filter.AccountIDs})
	}

	q = q.GroupBy("m.account_id", "a.code", "a.name", "m.reference").
		Having(fmt.Sprintf("SUM(%s) <> 0", signedAmount)).
		Having("MAX(m.due_date) IS NOT NULL").
		OrderBy("due_date", "m.reference")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var docs []reports.OpenDocument
	err = r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &docs, sql, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select open documents: %w", err)
	}

	return docs, nil
}

// Ensure interface compliance.
var _ reports.Repository = (*ReportRepo)(nil)
