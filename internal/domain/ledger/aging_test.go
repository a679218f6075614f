package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cartera/internal/core/types"
)

var owed = types.MustMoney("500")

func TestClassifyAging_FarOverdueIsHigh(t *testing.T) {
	today := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	due := today.AddDate(0, 0, -150)

	c := ClassifyAging(due, owed, today)

	assert.Equal(t, -150, c.DaysRemaining)
	assert.True(t, c.IsOverdue)
	assert.False(t, c.IsDueToday)
	assert.Equal(t, PriorityHigh, c.Priority)
}

func TestClassifyAging_RecentOverdueIsMedium(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	due := today.AddDate(0, 0, -99)

	c := ClassifyAging(due, owed, today)

	assert.Equal(t, -99, c.DaysRemaining)
	assert.Equal(t, PriorityMedium, c.Priority)
}

func TestClassifyAging_HighThresholdBoundary(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	c := ClassifyAging(today.AddDate(0, 0, -100), owed, today)
	assert.Equal(t, PriorityHigh, c.Priority, "exactly 100 days of mora escalates")
}

func TestClassifyAging_FutureDueIsLow(t *testing.T) {
	today := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	due := today.AddDate(0, 0, 5)

	c := ClassifyAging(due, owed, today)

	assert.Equal(t, 5, c.DaysRemaining)
	assert.False(t, c.IsOverdue)
	assert.Equal(t, PriorityLow, c.Priority)
}

func TestClassifyAging_NothingOwedIsAlwaysLow(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	due := today.AddDate(0, 0, -200)

	c := ClassifyAging(due, types.Zero(), today)
	assert.Equal(t, PriorityLow, c.Priority)

	c = ClassifyAging(due, types.MustMoney("-50"), today)
	assert.Equal(t, PriorityLow, c.Priority)
}

func TestClassifyAging_DueTodayIgnoresTimeOfDay(t *testing.T) {
	// Same local calendar day must classify as due today regardless of the
	// time-of-day component on either side.
	today := time.Date(2025, 6, 1, 23, 45, 0, 0, time.Local)
	due := time.Date(2025, 6, 1, 0, 15, 0, 0, time.Local)

	c := ClassifyAging(due, owed, today)

	assert.Equal(t, 0, c.DaysRemaining)
	assert.True(t, c.IsDueToday)
	assert.False(t, c.IsOverdue)
	assert.Equal(t, PriorityLow, c.Priority)
}

func TestClassifyAging_AdjacentDays(t *testing.T) {
	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	yesterday := ClassifyAging(today.AddDate(0, 0, -1), owed, today)
	assert.Equal(t, -1, yesterday.DaysRemaining)
	assert.True(t, yesterday.IsOverdue)
	assert.Equal(t, PriorityMedium, yesterday.Priority)

	tomorrow := ClassifyAging(today.AddDate(0, 0, 1), owed, today)
	assert.Equal(t, 1, tomorrow.DaysRemaining)
	assert.False(t, tomorrow.IsOverdue)
}

func TestClassifyAging_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// Across a DST boundary the raw difference is not a whole day; the
	// midnight truncation plus rounding must still yield exact days.
	today := time.Date(2025, 4, 10, 8, 0, 0, 0, loc)
	due := time.Date(2025, 4, 3, 20, 0, 0, 0, loc)

	c := ClassifyAging(due, owed, today)
	assert.Equal(t, -7, c.DaysRemaining)
}
