package ledger

// Display labels match the wording shown in the statement tables
// (cargo/abono for clients, factura/pago for providers).

// maxLabelRefLen bounds the reference fragment appended for traceability.
const maxLabelRefLen = 12

// KindLabel maps a kind to its human label. The mapping is exhaustive over
// the closed kind set; a kind outside the set is returned verbatim rather
// than mislabeled as an adjustment (such values cannot come out of
// GroupAndBalance, which rejects them up front).
func KindLabel(kind Kind) string {
	switch kind {
	case KindOrder:
		return "Cargo"
	case KindReceipt:
		return "Abono"
	case KindManualAdjustment:
		return "Ajuste"
	case KindInvoice:
		return "Factura"
	case KindPayment:
		return "Pago"
	case KindCreditNote:
		return "Nota de crédito"
	case KindAdjustment:
		return "Ajuste"
	}
	return string(kind)
}

// FormatGroupLabel renders the display label for a group: the kind label
// plus a truncated reference for traceability. Synthetic groups (no
// originating document) get the kind label alone.
func FormatGroupLabel(g MovementGroup) string {
	label := KindLabel(g.Kind)
	if g.Reference == "" {
		return label
	}

	ref := g.Reference
	// Cut on rune boundaries: a byte slice could split a multi-byte
	// character and emit invalid UTF-8.
	if runes := []rune(ref); len(runes) > maxLabelRefLen {
		ref = string(runes[:maxLabelRefLen]) + "…"
	}
	return label + " " + ref
}
