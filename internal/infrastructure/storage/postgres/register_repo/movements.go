// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"cartera/internal/core/apperror"
	appctx "cartera/internal/core/context"
	"cartera/internal/core/id"
	"cartera/internal/domain/cartera"
	"cartera/internal/domain/ledger"
	"cartera/internal/domain/registers/movements"
	"cartera/internal/infrastructure/storage/postgres"
)

const movementsTable = "reg_movements"

var movementColumns = []string{
	"line_id", "company_id", "recorder_id", "recorder_type",
	"side", "account_id", "date", "kind", "reference",
	"amount", "currency", "due_date", "created_at",
}

// MovementsRepo implements movements.Repository and the statement service's
// movement source.
type MovementsRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewMovementsRepo creates a new movement register repository.
func NewMovementsRepo(txm *postgres.TxManager) *MovementsRepo {
	return &MovementsRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *MovementsRepo) companyID(ctx context.Context) (string, error) {
	raw := appctx.GetCompanyID(ctx)
	if raw == "" {
		return "", apperror.NewUnauthorized("company scope is missing")
	}
	return raw, nil
}

// CreateRecords batch inserts register rows.
func (r *MovementsRepo) CreateRecords(ctx context.Context, records []movements.Record) error {
	if len(records) == 0 {
		return nil
	}

	companyID, err := r.companyID(ctx)
	if err != nil {
		return err
	}

	// Fast path: COPY when inside a transaction.
	if tx := r.txm.GetTx(ctx); tx != nil {
		inserter := postgres.NewBatchInserter(r.txm)
		rows := make([][]any, 0, len(records))
		for _, m := range records {
			rows = append(rows, []any{
				m.LineID, companyID, m.RecorderID, m.RecorderType,
				m.Side, m.AccountID, m.Date, m.Kind, m.Reference,
				m.Amount, m.Currency, m.DueDate, m.CreatedAt,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, movementsTable, movementColumns, rows); err != nil {
			return fmt.Errorf("copy records: %w", err)
		}
		return nil
	}

	// Fallback: multi-row insert. Prefer calling CreateRecords within tx.
	q := r.builder.Insert(movementsTable).Columns(movementColumns...)
	for _, m := range records {
		q = q.Values(
			m.LineID, companyID, m.RecorderID, m.RecorderType,
			m.Side, m.AccountID, m.Date, m.Kind, m.Reference,
			m.Amount, m.Currency, m.DueDate, m.CreatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}

	return nil
}

// DeleteByRecorder removes all rows written by a document.
func (r *MovementsRepo) DeleteByRecorder(ctx context.Context, recorderID id.ID) error {
	companyID, err := r.companyID(ctx)
	if err != nil {
		return err
	}

	q := r.builder.Delete(movementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		Where(squirrel.Eq{"company_id": companyID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}

	return nil
}

// GetByRecorder retrieves the rows written by a document.
func (r *MovementsRepo) GetByRecorder(ctx context.Context, recorderID id.ID) ([]movements.Record, error) {
	companyID, err := r.companyID(ctx)
	if err != nil {
		return nil, err
	}

	q := r.builder.Select(movementColumns...).
		From(movementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var records []movements.Record
	err = r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &records, sql, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}

	return records, nil
}

// ListByAccount returns one account holder's movements on one side.
func (r *MovementsRepo) ListByAccount(ctx context.Context, side ledger.Side, accountID id.ID, filter movements.ListFilter) ([]movements.Record, error) {
	companyID, err := r.companyID(ctx)
	if err != nil {
		return nil, err
	}

	q := r.builder.Select(movementColumns...).
		From(movementsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"side": side}).
		Where(squirrel.Eq{"account_id": accountID})

	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.ToDate})
	}

	// Date plus insertion order, the tie-break the aggregation documents.
	q = q.OrderBy("date", "created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var records []movements.Record
	err = r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &records, sql, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}

	return records, nil
}

// ListClientMovements implements the statement service's movement source.
func (r *MovementsRepo) ListClientMovements(ctx context.Context, clientID id.ID, filter cartera.StatementFilter) ([]ledger.Movement, error) {
	records, err := r.ListByAccount(ctx, ledger.SideReceivable, clientID, movements.ListFilter{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	})
	if err != nil {
		return nil, err
	}
	return movements.ToLedger(records), nil
}

// ListProviderMovements implements the statement service's movement source.
func (r *MovementsRepo) ListProviderMovements(ctx context.Context, providerID id.ID, filter cartera.StatementFilter) ([]ledger.Movement, error) {
	records, err := r.ListByAccount(ctx, ledger.SidePayable, providerID, movements.ListFilter{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	})
	if err != nil {
		return nil, err
	}
	return movements.ToLedger(records), nil
}

// Ensure interface compliance.
var (
	_ movements.Repository       = (*MovementsRepo)(nil)
	_ cartera.MovementRepository = (*MovementsRepo)(nil)
)
