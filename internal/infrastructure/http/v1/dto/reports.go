package dto

import (
	"time"

	"cartera/internal/domain/reports"
)

// --- Aging (vencimientos) report ---

// AgingReportRequest represents request for the aging report.
type AgingReportRequest struct {
	AsOfDate    *time.Time `form:"asOfDate"`
	Side        string     `form:"side"`
	AccountIDs  []string   `form:"accountId"`
	Priorities  []string   `form:"priority"`
	OverdueOnly bool       `form:"overdueOnly"`
	Limit       int        `form:"limit"`
	Offset      int        `form:"offset"`
}

// AgingReportItemResponse represents a single classified document.
type AgingReportItemResponse struct {
	AccountID     string `json:"accountId"`
	AccountCode   string `json:"accountCode"`
	AccountName   string `json:"accountName"`
	Kind          string `json:"kind"`
	Reference     string `json:"reference"`
	Label         string `json:"label"`
	IssueDate     string `json:"issueDate"`
	DueDate       string `json:"dueDate"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency,omitempty"`
	DaysRemaining int    `json:"daysRemaining"`
	IsOverdue     bool   `json:"isOverdue"`
	IsDueToday    bool   `json:"isDueToday"`
	Priority      string `json:"priority"`
}

// AgingSummaryResponse represents per-priority totals.
type AgingSummaryResponse struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
	Total    string `json:"total"`
}

// AgingReportResponse represents the full aging report.
type AgingReportResponse struct {
	AsOfDate         string                    `json:"asOfDate"`
	Side             string                    `json:"side"`
	Items            []AgingReportItemResponse `json:"items"`
	TotalItems       int                       `json:"totalItems"`
	Summary          []AgingSummaryResponse    `json:"summary"`
	TotalOutstanding string                    `json:"totalOutstanding"`
}

// FromAgingReport converts domain report to response DTO.
func FromAgingReport(r *reports.AgingReport) *AgingReportResponse {
	resp := &AgingReportResponse{
		AsOfDate:         r.AsOfDate.Format(time.RFC3339),
		Side:             string(r.Side),
		Items:            make([]AgingReportItemResponse, len(r.Items)),
		TotalItems:       r.TotalItems,
		Summary:          make([]AgingSummaryResponse, len(r.Summary)),
		TotalOutstanding: r.TotalOutstanding.String(),
	}

	for i, item := range r.Items {
		resp.Items[i] = AgingReportItemResponse{
			AccountID:     item.AccountID.String(),
			AccountCode:   item.AccountCode,
			AccountName:   item.AccountName,
			Kind:          string(item.Kind),
			Reference:     item.Reference,
			Label:         item.Label,
			IssueDate:     item.IssueDate.Format(time.RFC3339),
			DueDate:       item.DueDate.Format(time.RFC3339),
			Balance:       item.Balance.String(),
			Currency:      item.Currency,
			DaysRemaining: item.DaysRemaining,
			IsOverdue:     item.IsOverdue,
			IsDueToday:    item.IsDueToday,
			Priority:      string(item.Priority),
		}
	}

	for i, s := range r.Summary {
		resp.Summary[i] = AgingSummaryResponse{
			Priority: string(s.Priority),
			Count:    s.Count,
			Total:    s.Total.String(),
		}
	}

	return resp
}
