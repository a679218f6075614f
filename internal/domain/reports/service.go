package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAgingReport generates the aging (vencimientos) report: every open
// document classified against the reference day, most urgent first.
func (s *Service) GetAgingReport(ctx context.Context, filter AgingReportFilter) (*AgingReport, error) {
	// Default to current time if not specified
	if filter.AsOfDate == nil {
		now := time.Now()
		filter.AsOfDate = &now
	}
	if filter.Side == "" {
		filter.Side = ledger.SideReceivable
	}

	// Set default pagination
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	docs, err := s.repo.ListOpenDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list open documents: %w", err)
	}

	items := make([]AgingReportItem, 0, len(docs))
	for _, doc := range docs {
		c := ledger.ClassifyAging(doc.DueDate, doc.Balance, *filter.AsOfDate)

		if filter.OverdueOnly && !c.IsOverdue {
			continue
		}
		if len(filter.Priorities) > 0 && !containsPriority(filter.Priorities, c.Priority) {
			continue
		}

		items = append(items, AgingReportItem{
			OpenDocument: doc,
			Label: ledger.FormatGroupLabel(ledger.MovementGroup{
				Kind:      doc.Kind,
				Reference: doc.Reference,
			}),
			DaysRemaining: c.DaysRemaining,
			IsOverdue:     c.IsOverdue,
			IsDueToday:    c.IsDueToday,
			Priority:      c.Priority,
		})
	}

	// Most urgent first: HIGH before MEDIUM before LOW, then the longest
	// overdue, then by reference for a stable tiebreak.
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := priorityRank(items[i].Priority), priorityRank(items[j].Priority)
		if ri != rj {
			return ri < rj
		}
		if items[i].DaysRemaining != items[j].DaysRemaining {
			return items[i].DaysRemaining < items[j].DaysRemaining
		}
		return items[i].Reference < items[j].Reference
	})

	report := &AgingReport{
		AsOfDate:         *filter.AsOfDate,
		Side:             filter.Side,
		Items:            items,
		TotalItems:       len(items),
		Summary:          summarize(items),
		TotalOutstanding: types.Zero(),
	}
	for _, it := range items {
		report.TotalOutstanding = report.TotalOutstanding.Add(it.Balance)
	}

	return report, nil
}

func summarize(items []AgingReportItem) []AgingSummary {
	byPriority := map[ledger.Priority]*AgingSummary{}
	for _, p := range []ledger.Priority{ledger.PriorityHigh, ledger.PriorityMedium, ledger.PriorityLow} {
		byPriority[p] = &AgingSummary{Priority: p, Total: types.Zero()}
	}
	for _, it := range items {
		s := byPriority[it.Priority]
		s.Count++
		s.Total = s.Total.Add(it.Balance)
	}
	return []AgingSummary{
		*byPriority[ledger.PriorityHigh],
		*byPriority[ledger.PriorityMedium],
		*byPriority[ledger.PriorityLow],
	}
}

func priorityRank(p ledger.Priority) int {
	switch p {
	case ledger.PriorityHigh:
		return 0
	case ledger.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func containsPriority(list []ledger.Priority, p ledger.Priority) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}
