package dto

import (
	"time"

	"cartera/internal/domain/cartera"
	"cartera/internal/domain/ledger"
)

// --- Request DTOs ---

// StatementRequest represents query parameters for an account statement.
type StatementRequest struct {
	FromDate *time.Time `form:"fromDate"`
	ToDate   *time.Time `form:"toDate"`
}

// ToFilter converts to domain filter.
func (r *StatementRequest) ToFilter() cartera.StatementFilter {
	return cartera.StatementFilter{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
	}
}

// --- Response DTOs ---

// MovementResponse is one movement line inside a statement row.
type MovementResponse struct {
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	Reference string `json:"reference,omitempty"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency,omitempty"`
}

// FromMovement converts a ledger movement to its response form.
func FromMovement(m ledger.Movement) MovementResponse {
	return MovementResponse{
		Date:      m.Date.Format(time.RFC3339),
		Kind:      string(m.Kind),
		Reference: m.Reference,
		Amount:    m.Amount.String(),
		Currency:  m.Currency,
	}
}

// StatementRowResponse is one grouped row of a statement.
type StatementRowResponse struct {
	Key                 string             `json:"key"`
	Label               string             `json:"label"`
	Kind                string             `json:"kind"`
	Reference           string             `json:"reference,omitempty"`
	FirstDate           string             `json:"firstDate"`
	Items               []MovementResponse `json:"items"`
	Total               string             `json:"total"`
	RunningBalanceAfter string             `json:"runningBalanceAfter"`
}

// StatementResponse represents a full account statement.
type StatementResponse struct {
	Side        string                 `json:"side"`
	AccountID   string                 `json:"accountId"`
	AccountCode string                 `json:"accountCode"`
	AccountName string                 `json:"accountName"`
	Rows        []StatementRowResponse `json:"rows"`
	Balance     string                 `json:"balance"`
	GeneratedAt string                 `json:"generatedAt"`
}

// FromStatement converts domain statement to response DTO.
func FromStatement(s *cartera.Statement) *StatementResponse {
	resp := &StatementResponse{
		Side:        string(s.Side),
		AccountID:   s.AccountID.String(),
		AccountCode: s.AccountCode,
		AccountName: s.AccountName,
		Rows:        make([]StatementRowResponse, len(s.Rows)),
		Balance:     s.Balance.String(),
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
	}

	for i, row := range s.Rows {
		items := make([]MovementResponse, len(row.Items))
		for j, m := range row.Items {
			items[j] = FromMovement(m)
		}
		resp.Rows[i] = StatementRowResponse{
			Key:                 row.Key,
			Label:               row.Label,
			Kind:                string(row.Kind),
			Reference:           row.Reference,
			FirstDate:           row.FirstDate.Format(time.RFC3339),
			Items:               items,
			Total:               row.Total.String(),
			RunningBalanceAfter: row.RunningBalanceAfter.String(),
		}
	}

	return resp
}
