// Package reports provides report generation services.
package reports

import (
	"time"

	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
)

// --- Aging (vencimientos) report ---

// AgingReportFilter defines filter for the aging report.
type AgingReportFilter struct {
	// AsOfDate - reference day for aging (defaults to now)
	AsOfDate *time.Time

	// Side selects receivable or payable documents (defaults to receivable)
	Side ledger.Side

	// Filters
	AccountIDs []id.ID
	Priorities []ledger.Priority

	// OverdueOnly drops documents that are not yet due
	OverdueOnly bool

	// Pagination
	Limit  int
	Offset int
}

// OpenDocument is an unpaid document with its outstanding balance, as read
// from storage before classification.
type OpenDocument struct {
	AccountID   id.ID       `json:"accountId"`
	AccountCode string      `json:"accountCode"`
	AccountName string      `json:"accountName"`
	Kind        ledger.Kind `json:"kind"`
	Reference   string      `json:"reference"`
	IssueDate   time.Time   `json:"issueDate"`
	DueDate     time.Time   `json:"dueDate"`
	Balance     types.Money `json:"balance"`
	Currency    string      `json:"currency,omitempty"`
}

// AgingReportItem is one classified row of the aging report.
type AgingReportItem struct {
	OpenDocument

	// Label is the human display label for the originating document.
	Label string `json:"label"`

	DaysRemaining int             `json:"daysRemaining"`
	IsOverdue     bool            `json:"isOverdue"`
	IsDueToday    bool            `json:"isDueToday"`
	Priority      ledger.Priority `json:"priority"`
}

// AgingSummary provides count and outstanding total per priority.
type AgingSummary struct {
	Priority ledger.Priority `json:"priority"`
	Count    int             `json:"count"`
	Total    types.Money     `json:"total"`
}

// AgingReport represents the full aging report.
type AgingReport struct {
	AsOfDate time.Time   `json:"asOfDate"`
	Side     ledger.Side `json:"side"`

	Items      []AgingReportItem `json:"items"`
	TotalItems int               `json:"totalItems"`

	// Summary rows ordered HIGH, MEDIUM, LOW.
	Summary []AgingSummary `json:"summary"`

	// TotalOutstanding is the sum of all item balances.
	TotalOutstanding types.Money `json:"totalOutstanding"`
}
