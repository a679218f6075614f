package dto

import (
	"time"

	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
	"cartera/internal/domain/registers/movements"
)

// --- Request DTOs ---

// MovementRowRequest is one register row in a posting request.
type MovementRowRequest struct {
	AccountID string     `json:"accountId" binding:"required,uuid"`
	Date      time.Time  `json:"date" binding:"required"`
	Kind      string     `json:"kind" binding:"required"`
	Reference string     `json:"reference"`
	Amount    string     `json:"amount" binding:"required"`
	Currency  string     `json:"currency"`
	DueDate   *time.Time `json:"dueDate"`
}

// RecordMovementsRequest posts a batch of register rows for one document.
type RecordMovementsRequest struct {
	RecorderID   string               `json:"recorderId" binding:"required,uuid"`
	RecorderType string               `json:"recorderType" binding:"required"`
	Side         string               `json:"side" binding:"required"`
	Rows         []MovementRowRequest `json:"rows" binding:"required,min=1"`
}

// ToRecords converts the request to register records.
func (r *RecordMovementsRequest) ToRecords() ([]movements.Record, error) {
	recorderID, err := id.Parse(r.RecorderID)
	if err != nil {
		return nil, err
	}

	records := make([]movements.Record, len(r.Rows))
	for i, row := range r.Rows {
		accountID, err := id.Parse(row.AccountID)
		if err != nil {
			return nil, err
		}
		amount, err := types.NewMoneyFromString(row.Amount)
		if err != nil {
			return nil, err
		}
		records[i] = movements.Record{
			RecorderID:   recorderID,
			RecorderType: r.RecorderType,
			Side:         ledger.Side(r.Side),
			AccountID:    accountID,
			Date:         row.Date,
			Kind:         ledger.Kind(row.Kind),
			Reference:    row.Reference,
			Amount:       amount,
			Currency:     row.Currency,
			DueDate:      row.DueDate,
		}
	}

	return records, nil
}

// --- Response DTOs ---

// MovementRecordResponse is one persisted register row.
type MovementRecordResponse struct {
	LineID       string     `json:"lineId"`
	RecorderID   string     `json:"recorderId"`
	RecorderType string     `json:"recorderType"`
	Side         string     `json:"side"`
	AccountID    string     `json:"accountId"`
	Date         string     `json:"date"`
	Kind         string     `json:"kind"`
	Reference    string     `json:"reference,omitempty"`
	Amount       string     `json:"amount"`
	Currency     string     `json:"currency,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CreatedAt    string     `json:"createdAt"`
}

// FromMovementRecord converts a register record to its response form.
func FromMovementRecord(r movements.Record) MovementRecordResponse {
	return MovementRecordResponse{
		LineID:       r.LineID.String(),
		RecorderID:   r.RecorderID.String(),
		RecorderType: r.RecorderType,
		Side:         string(r.Side),
		AccountID:    r.AccountID.String(),
		Date:         r.Date.Format(time.RFC3339),
		Kind:         string(r.Kind),
		Reference:    r.Reference,
		Amount:       r.Amount.String(),
		Currency:     r.Currency,
		DueDate:      r.DueDate,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

// FromMovementRecords converts a batch of register records.
func FromMovementRecords(records []movements.Record) []MovementRecordResponse {
	out := make([]MovementRecordResponse, len(records))
	for i, r := range records {
		out[i] = FromMovementRecord(r)
	}
	return out
}
