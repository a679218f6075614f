// Package movements provides the account movement register: the persisted
// stream of dated entries the statements and aging report are built from.
package movements

import (
	"context"
	"time"

	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
)

// Record is a persisted movement row. RecorderID points at the originating
// document so a re-posted document can replace its own entries.
type Record struct {
	LineID       id.ID       `db:"line_id" json:"lineId"`
	CompanyID    string      `db:"company_id" json:"companyId"`
	RecorderID   id.ID       `db:"recorder_id" json:"recorderId"`
	RecorderType string      `db:"recorder_type" json:"recorderType"`
	Side         ledger.Side `db:"side" json:"side"`
	AccountID    id.ID       `db:"account_id" json:"accountId"`
	Date         time.Time   `db:"date" json:"date"`
	Kind         ledger.Kind `db:"kind" json:"kind"`
	Reference    string      `db:"reference" json:"reference,omitempty"`
	Amount       types.Money `db:"amount" json:"amount"`
	Currency     string      `db:"currency" json:"currency,omitempty"`

	// DueDate is set on balance-increasing entries and feeds the aging report.
	DueDate *time.Time `db:"due_date" json:"dueDate,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ToLedger converts a record to its aggregation form.
func (r Record) ToLedger() ledger.Movement {
	return ledger.Movement{
		Date:      r.Date,
		Kind:      r.Kind,
		Reference: r.Reference,
		Amount:    r.Amount,
		Currency:  r.Currency,
	}
}

// ToLedger converts records to their aggregation form, preserving order.
func ToLedger(records []Record) []ledger.Movement {
	out := make([]ledger.Movement, len(records))
	for i, r := range records {
		out[i] = r.ToLedger()
	}
	return out
}

// ListFilter bounds an account movement query.
type ListFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
}

// Repository defines operations for the movement register.
type Repository interface {
	// CreateRecords batch inserts register rows.
	CreateRecords(ctx context.Context, records []Record) error

	// DeleteByRecorder removes all rows written by a document.
	DeleteByRecorder(ctx context.Context, recorderID id.ID) error

	// GetByRecorder retrieves the rows written by a document.
	GetByRecorder(ctx context.Context, recorderID id.ID) ([]Record, error)

	// ListByAccount returns one account holder's movements on one side.
	ListByAccount(ctx context.Context, side ledger.Side, accountID id.ID, filter ListFilter) ([]Record, error)
}
