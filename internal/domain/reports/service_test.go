package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
)

type stubRepo struct {
	docs []OpenDocument
	err  error

	gotFilter AgingReportFilter
}

func (s *stubRepo) ListOpenDocuments(_ context.Context, filter AgingReportFilter) ([]OpenDocument, error) {
	s.gotFilter = filter
	return s.docs, s.err
}

func openDoc(ref string, due time.Time, balance string) OpenDocument {
	return OpenDocument{
		AccountID:   id.New(),
		AccountCode: "CLI-2025-00001",
		AccountName: "Cliente",
		Kind:        ledger.KindOrder,
		Reference:   ref,
		IssueDate:   due.AddDate(0, 0, -30),
		DueDate:     due,
		Balance:     types.MustMoney(balance),
	}
}

func TestGetAgingReport(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	repo := &stubRepo{docs: []OpenDocument{
		openDoc("PED-LOW", asOf.AddDate(0, 0, 5), "100"),     // not due yet
		openDoc("PED-MED", asOf.AddDate(0, 0, -30), "200"),   // overdue 30 days
		openDoc("PED-HIGH", asOf.AddDate(0, 0, -150), "300"), // overdue 150 days
		openDoc("PED-PAID", asOf.AddDate(0, 0, -200), "0"),   // nothing owed
	}}

	svc := NewService(repo)

	report, err := svc.GetAgingReport(context.Background(), AgingReportFilter{AsOfDate: &asOf})
	require.NoError(t, err)

	assert.Equal(t, ledger.SideReceivable, report.Side)
	require.Len(t, report.Items, 4)

	// HIGH first, then MEDIUM, then the LOW rows.
	assert.Equal(t, "PED-HIGH", report.Items[0].Reference)
	assert.Equal(t, ledger.PriorityHigh, report.Items[0].Priority)
	assert.Equal(t, -150, report.Items[0].DaysRemaining)

	assert.Equal(t, "PED-MED", report.Items[1].Reference)
	assert.Equal(t, ledger.PriorityMedium, report.Items[1].Priority)

	// The settled document ages the most but nothing is owed, so it stays LOW.
	assert.Equal(t, "PED-PAID", report.Items[2].Reference)
	assert.Equal(t, ledger.PriorityLow, report.Items[2].Priority)

	assert.Equal(t, "PED-LOW", report.Items[3].Reference)
	assert.Equal(t, ledger.PriorityLow, report.Items[3].Priority)
	assert.False(t, report.Items[3].IsOverdue)

	assert.True(t, report.TotalOutstanding.Equal(types.MustMoney("600")))

	require.Len(t, report.Summary, 3)
	assert.Equal(t, ledger.PriorityHigh, report.Summary[0].Priority)
	assert.Equal(t, 1, report.Summary[0].Count)
	assert.True(t, report.Summary[0].Total.Equal(types.MustMoney("300")))
	assert.Equal(t, 1, report.Summary[1].Count)
	assert.Equal(t, 2, report.Summary[2].Count)
}

func TestGetAgingReport_Labels(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	doc := openDoc("PED-2025-000123", asOf.AddDate(0, 0, -10), "50")
	repo := &stubRepo{docs: []OpenDocument{doc}}

	report, err := NewService(repo).GetAgingReport(context.Background(), AgingReportFilter{AsOfDate: &asOf})
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, "Cargo PED-2025-000…", report.Items[0].Label)
}

func TestGetAgingReport_OverdueOnly(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	repo := &stubRepo{docs: []OpenDocument{
		openDoc("PED-FUTURE", asOf.AddDate(0, 0, 10), "100"),
		openDoc("PED-PAST", asOf.AddDate(0, 0, -10), "100"),
	}}

	report, err := NewService(repo).GetAgingReport(context.Background(), AgingReportFilter{
		AsOfDate:    &asOf,
		OverdueOnly: true,
	})
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, "PED-PAST", report.Items[0].Reference)
}

func TestGetAgingReport_PriorityFilter(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	repo := &stubRepo{docs: []OpenDocument{
		openDoc("PED-HIGH", asOf.AddDate(0, 0, -120), "100"),
		openDoc("PED-MED", asOf.AddDate(0, 0, -20), "100"),
	}}

	report, err := NewService(repo).GetAgingReport(context.Background(), AgingReportFilter{
		AsOfDate:   &asOf,
		Priorities: []ledger.Priority{ledger.PriorityHigh},
	})
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, ledger.PriorityHigh, report.Items[0].Priority)
}

func TestGetAgingReport_Defaults(t *testing.T) {
	repo := &stubRepo{}

	report, err := NewService(repo).GetAgingReport(context.Background(), AgingReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.gotFilter.Limit)
	assert.Equal(t, ledger.SideReceivable, repo.gotFilter.Side)
	assert.False(t, report.AsOfDate.IsZero())
	assert.NotNil(t, report.Items)
	assert.True(t, report.TotalOutstanding.IsZero())
}
