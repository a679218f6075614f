// Package cartera provides account-holder statement generation: the grouped,
// running-balance view of a client's receivable ledger or a provider's
// payable ledger.
package cartera

import (
	"time"

	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
)

// StatementFilter defines the period filter for a statement.
type StatementFilter struct {
	// Period bounds, inclusive. Nil means unbounded on that end.
	FromDate *time.Time
	ToDate   *time.Time
}

// StatementRow is one display row of a statement: a movement group with its
// rendered label.
type StatementRow struct {
	// Key addresses the row for presentation state (expand/collapse).
	Key string `json:"key"`

	// Label is the human display label (Cargo PED-2025-001, Ajuste, ...).
	Label string `json:"label"`

	Kind      ledger.Kind `json:"kind"`
	Reference string      `json:"reference,omitempty"`
	FirstDate time.Time   `json:"firstDate"`

	// Items are the member movements, chronological ascending.
	Items []ledger.Movement `json:"items"`

	// Total is the unsigned group magnitude.
	Total types.Money `json:"total"`

	// RunningBalanceAfter is the account balance after this row.
	RunningBalanceAfter types.Money `json:"runningBalanceAfter"`
}

// Statement is the full statement for one account holder.
type Statement struct {
	Side ledger.Side `json:"side"`

	AccountID   id.ID  `json:"accountId"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`

	Rows []StatementRow `json:"rows"`

	// Balance is the closing balance, equal to the last row's
	// RunningBalanceAfter (zero when there are no rows).
	Balance types.Money `json:"balance"`

	GeneratedAt time.Time `json:"generatedAt"`
}
