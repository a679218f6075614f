package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/apperror"
	"cartera/internal/core/types"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func mv(d int, kind Kind, ref string, amount string) Movement {
	return Movement{
		Date:      day(d),
		Kind:      kind,
		Reference: ref,
		Amount:    types.MustMoney(amount),
		Currency:  "MXN",
	}
}

func TestGroupAndBalance_TwoGroups(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindOrder, "A", "1000"),
		mv(5, KindReceipt, "B", "400"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "ORDER:A", groups[0].Key)
	assert.True(t, groups[0].Total.Equal(types.MustMoney("1000")))
	assert.True(t, groups[0].RunningBalanceAfter.Equal(types.MustMoney("1000")))

	assert.Equal(t, "RECEIPT:B", groups[1].Key)
	assert.True(t, groups[1].Total.Equal(types.MustMoney("400")))
	assert.True(t, groups[1].RunningBalanceAfter.Equal(types.MustMoney("600")))
}

func TestGroupAndBalance_SharedReferenceCollapses(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindOrder, "A", "100"),
		mv(3, KindOrder, "A", "50"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Len(t, groups[0].Items, 2)
	assert.True(t, groups[0].Total.Equal(types.MustMoney("150")))
	assert.Equal(t, day(1), groups[0].FirstDate)
}

func TestGroupAndBalance_DifferentKindSameReference(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	// A charge and its payment can share the originating order id but must
	// stay separate rows.
	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindOrder, "A", "100"),
		mv(2, KindReceipt, "A", "100"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.True(t, groups[1].RunningBalanceAfter.IsZero())
}

func TestGroupAndBalance_MissingReferenceSyntheticSingletons(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindManualAdjustment, "", "200"),
		mv(2, KindManualAdjustment, "", "300"),
	})
	require.NoError(t, err)

	// Two unreferenced adjustments must not collapse into one row.
	require.Len(t, groups, 2)
	assert.Equal(t, "MANUAL_ADJUSTMENT:ADJUSTMENT", groups[0].Key)
	assert.Equal(t, "MANUAL_ADJUSTMENT:ADJUSTMENT", groups[1].Key)
	assert.Len(t, groups[0].Items, 1)
}

func TestGroupAndBalance_AdjustmentPolicyDefault(t *testing.T) {
	// Pins the documented convention: adjustments subtract by default.
	agg := NewAggregator(SideReceivable, "")
	require.Equal(t, AdjustmentsSubtract, agg.Policy())

	bal, err := agg.Balance([]Movement{
		mv(1, KindOrder, "A", "1000"),
		mv(2, KindManualAdjustment, "", "200"),
	})
	require.NoError(t, err)
	assert.True(t, bal.Equal(types.MustMoney("800")))
}

func TestGroupAndBalance_AdjustmentPolicyAdd(t *testing.T) {
	agg := NewAggregator(SideReceivable, AdjustmentsAdd)

	bal, err := agg.Balance([]Movement{
		mv(1, KindOrder, "A", "1000"),
		mv(2, KindManualAdjustment, "", "200"),
	})
	require.NoError(t, err)
	assert.True(t, bal.Equal(types.MustMoney("1200")))
}

func TestGroupAndBalance_PayableSigns(t *testing.T) {
	agg := NewAggregator(SidePayable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindInvoice, "F-1", "500"),
		mv(2, KindPayment, "P-1", "200"),
		mv(3, KindCreditNote, "NC-1", "100"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.True(t, groups[2].RunningBalanceAfter.Equal(types.MustMoney("200")))
}

func TestGroupAndBalance_EmptyInput(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance(nil)
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupAndBalance_UnknownKindFailsWhole(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindOrder, "A", "100"),
		mv(2, Kind("REFUND"), "B", "50"),
	})
	require.Error(t, err)
	assert.Nil(t, groups)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnknownMovementKind, appErr.Code)
	assert.Equal(t, 1, appErr.Details["index"])
	assert.Equal(t, "REFUND", appErr.Details["kind"])
}

func TestGroupAndBalance_CrossSideKindRejected(t *testing.T) {
	// A payable kind leaking into a receivable ledger is a data bug, not a
	// movement to be summed with a guessed sign.
	agg := NewAggregator(SideReceivable, "")

	_, err := agg.GroupAndBalance([]Movement{mv(1, KindInvoice, "F-1", "100")})
	require.Error(t, err)
	assert.True(t, apperror.IsMalformedMovement(err))
}

func TestGroupAndBalance_MissingDateRejected(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	m := mv(1, KindOrder, "A", "100")
	m.Date = time.Time{}

	_, err := agg.GroupAndBalance([]Movement{m})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeMalformedMovement, appErr.Code)
	assert.Equal(t, "A", appErr.Details["reference"])
}

func TestGroupAndBalance_GroupsOrderedByFirstDate(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(9, KindReceipt, "C", "10"),
		mv(2, KindOrder, "B", "20"),
		mv(7, KindOrder, "B", "30"), // same group as B, later date
		mv(1, KindOrder, "A", "40"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	for i := 1; i < len(groups); i++ {
		assert.False(t, groups[i].FirstDate.Before(groups[i-1].FirstDate),
			"groups must be non-decreasing by first date")
	}
	assert.Equal(t, "A", groups[0].Reference)
	assert.Equal(t, "B", groups[1].Reference)
	assert.Equal(t, "C", groups[2].Reference)
}

func TestGroupAndBalance_SumInvariant(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	input := []Movement{
		mv(3, KindReceipt, "R-1", "250"),
		mv(1, KindOrder, "O-1", "1000"),
		mv(2, KindOrder, "O-2", "400"),
		mv(4, KindManualAdjustment, "", "75"),
		mv(5, KindReceipt, "R-2", "300"),
	}

	groups, err := agg.GroupAndBalance(input)
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	// Final running balance equals the sum of signed group totals.
	expected := types.Zero()
	for _, g := range groups {
		expected = expected.Add(agg.signedTotal(g.Kind, g.Total))
	}
	assert.True(t, groups[len(groups)-1].RunningBalanceAfter.Equal(expected))

	// And each step applies exactly one group total.
	running := types.Zero()
	for _, g := range groups {
		running = running.Add(agg.signedTotal(g.Kind, g.Total))
		assert.True(t, g.RunningBalanceAfter.Equal(running))
	}
}

func TestGroupAndBalance_Idempotent(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	input := []Movement{
		mv(5, KindReceipt, "B", "400"),
		mv(1, KindOrder, "A", "1000"),
		mv(1, KindOrder, "A", "500"),
	}

	first, err := agg.GroupAndBalance(input)
	require.NoError(t, err)
	second, err := agg.GroupAndBalance(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGroupAndBalance_DoesNotMutateInput(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	input := []Movement{
		mv(5, KindReceipt, "B", "400"),
		mv(1, KindOrder, "A", "1000"),
	}
	snapshot := make([]Movement, len(input))
	copy(snapshot, input)

	_, err := agg.GroupAndBalance(input)
	require.NoError(t, err)

	assert.Equal(t, snapshot, input, "input order and fields must be untouched")
}

func TestGroupAndBalance_StableTieOrder(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	// Equal dates: input order decides, by stable sort.
	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindOrder, "FIRST", "10"),
		mv(1, KindOrder, "SECOND", "20"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "FIRST", groups[0].Reference)
	assert.Equal(t, "SECOND", groups[1].Reference)
}

func TestGroupAndBalance_DecimalPrecision(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	// 0.1 + 0.2 style sums must stay exact.
	bal, err := agg.Balance([]Movement{
		mv(1, KindOrder, "A", "0.10"),
		mv(2, KindOrder, "B", "0.20"),
	})
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.RequireFromString("0.3")))
}

func TestParseAdjustmentPolicy(t *testing.T) {
	p, err := ParseAdjustmentPolicy("")
	require.NoError(t, err)
	assert.Equal(t, AdjustmentsSubtract, p)

	p, err = ParseAdjustmentPolicy("add")
	require.NoError(t, err)
	assert.Equal(t, AdjustmentsAdd, p)

	p, err = ParseAdjustmentPolicy("subtract")
	require.NoError(t, err)
	assert.Equal(t, AdjustmentsSubtract, p)

	// A typo'd convention must fail loudly, never quietly subtract.
	_, err = ParseAdjustmentPolicy("substract")
	require.Error(t, err)
}
