// Package ledger implements the account-holder ledger aggregation used by the
// statement (cartera) and due-date (vencimientos) views: grouping raw
// movements, computing running balances in chronological order and
// classifying open documents by age and collection priority.
//
// Everything in this package is a pure, synchronous transformation. Inputs
// are never mutated and results are freshly allocated, so callers may share
// movement slices across renders and requests.
package ledger

import (
	"time"

	"cartera/internal/core/types"
)

// Side distinguishes the two ledgers an account holder can have.
type Side string

const (
	// SideReceivable is the client ledger (cuentas por cobrar).
	SideReceivable Side = "receivable"
	// SidePayable is the provider ledger (cuentas por pagar).
	SidePayable Side = "payable"
)

// Kind is the closed set of movement origin types.
// Receivable movements use ORDER / RECEIPT / MANUAL_ADJUSTMENT;
// payable movements use INVOICE / PAYMENT / CREDIT_NOTE / ADJUSTMENT.
// A kind outside the set for its side is a contract violation and fails the
// whole aggregation - it is never coerced or summed with a guessed sign.
type Kind string

const (
	// Receivable side
	KindOrder            Kind = "ORDER"             // cargo, increases balance
	KindReceipt          Kind = "RECEIPT"           // abono, decreases balance
	KindManualAdjustment Kind = "MANUAL_ADJUSTMENT" // sign governed by AdjustmentPolicy

	// Payable side
	KindInvoice    Kind = "INVOICE"     // increases balance
	KindPayment    Kind = "PAYMENT"     // decreases balance
	KindCreditNote Kind = "CREDIT_NOTE" // decreases balance
	KindAdjustment Kind = "ADJUSTMENT"  // sign governed by AdjustmentPolicy
)

// direction describes how a kind is applied to the running balance.
type direction int

const (
	directionIncrease direction = iota
	directionDecrease
	directionPolicy // adjustment kinds, resolved by AdjustmentPolicy
)

// ValidForSide reports whether the kind belongs to the given ledger side.
func (k Kind) ValidForSide(side Side) bool {
	switch side {
	case SideReceivable:
		return k == KindOrder || k == KindReceipt || k == KindManualAdjustment
	case SidePayable:
		return k == KindInvoice || k == KindPayment || k == KindCreditNote || k == KindAdjustment
	}
	return false
}

// IsAdjustment reports whether the kind's sign is policy-governed.
func (k Kind) IsAdjustment() bool {
	return k == KindManualAdjustment || k == KindAdjustment
}

func (k Kind) direction() direction {
	switch k {
	case KindOrder, KindInvoice:
		return directionIncrease
	case KindReceipt, KindPayment, KindCreditNote:
		return directionDecrease
	default:
		return directionPolicy
	}
}

// SyntheticReference is the group key placeholder for movements without an
// originating document. Each such movement becomes its own singleton group.
const SyntheticReference = "ADJUSTMENT"

// Movement is a single dated financial entry affecting an account balance.
// Amount is a magnitude; the sign applied to the balance comes from Kind.
type Movement struct {
	// Date is when the movement occurred.
	Date time.Time `json:"date"`

	// Kind is the origin document type, from the closed set for the side.
	Kind Kind `json:"kind"`

	// Reference identifies the originating document. Empty means the
	// movement is ungrouped and keyed by SyntheticReference.
	Reference string `json:"reference,omitempty"`

	// Amount is the movement magnitude.
	Amount types.Money `json:"amount"`

	// Currency is an ISO-like code, informational only. No cross-currency
	// arithmetic happens here.
	Currency string `json:"currency,omitempty"`
}

// GroupKey builds the composite grouping key for a kind and reference.
// Movements without a reference fall into per-movement synthetic groups,
// but share this key format for display addressing.
func GroupKey(kind Kind, reference string) string {
	if reference == "" {
		reference = SyntheticReference
	}
	return string(kind) + ":" + reference
}

// MovementGroup is a derived display row: movements sharing (kind, reference)
// collapsed into one entry with an aggregate total and the account balance
// after the group is applied.
type MovementGroup struct {
	// Key is GroupKey(Kind, Reference). Presentation state such as
	// expand/collapse is addressed by this key in the calling layer.
	Key string `json:"key"`

	Kind      Kind   `json:"kind"`
	Reference string `json:"reference,omitempty"`

	// Items are the member movements, chronological ascending.
	Items []Movement `json:"items"`

	// FirstDate is the earliest movement date in the group.
	FirstDate time.Time `json:"firstDate"`

	// Total is the sum of member amounts (unsigned magnitude).
	Total types.Money `json:"total"`

	// RunningBalanceAfter is the account balance immediately after this
	// group, given all groups before it (by FirstDate) have been applied.
	RunningBalanceAfter types.Money `json:"runningBalanceAfter"`
}
