package ledger

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/types"
)

func TestKindLabel_Exhaustive(t *testing.T) {
	expected := map[Kind]string{
		KindOrder:            "Cargo",
		KindReceipt:          "Abono",
		KindManualAdjustment: "Ajuste",
		KindInvoice:          "Factura",
		KindPayment:          "Pago",
		KindCreditNote:       "Nota de crédito",
		KindAdjustment:       "Ajuste",
	}
	for kind, label := range expected {
		assert.Equal(t, label, KindLabel(kind), "kind %s", kind)
	}
}

func TestKindLabel_UnknownKindNotMislabeled(t *testing.T) {
	// Outside the closed set the raw kind comes back verbatim - it must
	// never read as an adjustment.
	assert.Equal(t, "REFUND", KindLabel(Kind("REFUND")))
}

func TestFormatGroupLabel(t *testing.T) {
	agg := NewAggregator(SideReceivable, "")

	groups, err := agg.GroupAndBalance([]Movement{
		mv(1, KindOrder, "PED-2025-000123", types.MustMoney("100").String()),
		mv(2, KindManualAdjustment, "", "50"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Cargo PED-2025-000…", FormatGroupLabel(groups[0]))
	assert.Equal(t, "Ajuste", FormatGroupLabel(groups[1]))
}

func TestFormatGroupLabel_ShortReferenceKeptWhole(t *testing.T) {
	g := MovementGroup{Kind: KindPayment, Reference: "P-7"}
	assert.Equal(t, "Pago P-7", FormatGroupLabel(g))
}

func TestFormatGroupLabel_TruncatesOnRuneBoundary(t *testing.T) {
	// 13 two-byte runes: a byte cut at 12 would land mid-rune and emit
	// invalid UTF-8 before the ellipsis.
	g := MovementGroup{Kind: KindOrder, Reference: "ñññññññññññññ"}

	label := FormatGroupLabel(g)
	assert.Equal(t, "Cargo ññññññññññññ…", label)
	assert.True(t, utf8.ValidString(label))
}
