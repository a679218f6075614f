package ledger

import (
	"fmt"
	"sort"

	"cartera/internal/core/apperror"
	"cartera/internal/core/types"
)

// AdjustmentPolicy fixes the sign convention for policy-governed kinds
// (MANUAL_ADJUSTMENT, ADJUSTMENT). The convention is a single documented
// rule per deployment, never inferred per call.
type AdjustmentPolicy string

const (
	// AdjustmentsSubtract applies adjustments as balance decreases.
	// This is the default, matching the established collection workflow.
	AdjustmentsSubtract AdjustmentPolicy = "subtract"

	// AdjustmentsAdd applies adjustments as balance increases.
	AdjustmentsAdd AdjustmentPolicy = "add"
)

// ParseAdjustmentPolicy validates a configured policy value. Empty means the
// default; anything else outside the two conventions is an error, the sign
// is fixed per deployment and never guessed from a bad value.
func ParseAdjustmentPolicy(s string) (AdjustmentPolicy, error) {
	switch p := AdjustmentPolicy(s); p {
	case "":
		return AdjustmentsSubtract, nil
	case AdjustmentsSubtract, AdjustmentsAdd:
		return p, nil
	default:
		return "", fmt.Errorf("unknown adjustment policy %q", s)
	}
}

// Aggregator transforms an unordered movement list into grouped,
// chronologically balanced rows for one ledger side.
type Aggregator struct {
	side   Side
	policy AdjustmentPolicy
}

// NewAggregator creates an aggregator for the given side.
// An empty policy defaults to AdjustmentsSubtract.
func NewAggregator(side Side, policy AdjustmentPolicy) *Aggregator {
	if policy == "" {
		policy = AdjustmentsSubtract
	}
	return &Aggregator{side: side, policy: policy}
}

// Side returns the ledger side this aggregator validates against.
func (a *Aggregator) Side() Side { return a.side }

// Policy returns the adjustment sign convention in effect.
func (a *Aggregator) Policy() AdjustmentPolicy { return a.policy }

// GroupAndBalance groups movements by (kind, reference), orders groups by
// earliest movement date and walks them computing a running balance.
//
// Ordering is deterministic: movements are stable-sorted by date, so ties
// preserve input order (the source data carries no secondary ordering key,
// and this must not be relied upon beyond display stability). Grouping is
// order-preserving - no map iteration order leaks into the result.
//
// The input slice and its elements are never modified. Empty input yields
// an empty, non-nil result. A movement whose kind is outside the closed set
// for the aggregator's side, or whose date is missing, fails the whole call
// with an error identifying the offending record: skipping it would corrupt
// every subsequent running balance.
func (a *Aggregator) GroupAndBalance(movements []Movement) ([]MovementGroup, error) {
	if err := a.validate(movements); err != nil {
		return nil, err
	}

	// Work on a copy: callers share the input across renders.
	sorted := make([]Movement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	groups := make([]MovementGroup, 0, len(sorted))
	index := make(map[string]int, len(sorted))

	for _, m := range sorted {
		// Movements without a reference stay singleton groups: two unrelated
		// manual entries must not collapse into one row.
		if m.Reference == "" {
			groups = append(groups, newGroup(m))
			continue
		}

		key := GroupKey(m.Kind, m.Reference)
		if at, ok := index[key]; ok {
			g := &groups[at]
			g.Items = append(g.Items, m)
			g.Total = g.Total.Add(m.Amount)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, newGroup(m))
	}

	// Items are chronological already, so FirstDate is each group's first
	// item. Reorder the groups themselves by that date, stable.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].FirstDate.Before(groups[j].FirstDate)
	})

	balance := types.Zero()
	for i := range groups {
		balance = balance.Add(a.signedTotal(groups[i].Kind, groups[i].Total))
		groups[i].RunningBalanceAfter = balance
	}

	return groups, nil
}

// Balance returns the final balance for a movement list: the sum of all
// signed group totals, equal to the last group's RunningBalanceAfter.
func (a *Aggregator) Balance(movements []Movement) (types.Money, error) {
	groups, err := a.GroupAndBalance(movements)
	if err != nil {
		return types.Zero(), err
	}
	if len(groups) == 0 {
		return types.Zero(), nil
	}
	return groups[len(groups)-1].RunningBalanceAfter, nil
}

func (a *Aggregator) validate(movements []Movement) error {
	for i, m := range movements {
		if !m.Kind.ValidForSide(a.side) {
			return apperror.NewUnknownMovementKind(i, string(m.Kind)).
				WithDetail("side", string(a.side))
		}
		if m.Date.IsZero() {
			return apperror.NewMalformedMovement(i, m.Reference, "date is missing")
		}
	}
	return nil
}

func (a *Aggregator) signedTotal(kind Kind, total types.Money) types.Money {
	switch kind.direction() {
	case directionIncrease:
		return total
	case directionDecrease:
		return total.Neg()
	default:
		if a.policy == AdjustmentsAdd {
			return total
		}
		return total.Neg()
	}
}

func newGroup(m Movement) MovementGroup {
	return MovementGroup{
		Key:       GroupKey(m.Kind, m.Reference),
		Kind:      m.Kind,
		Reference: m.Reference,
		Items:     []Movement{m},
		FirstDate: m.Date,
		Total:     m.Amount,
	}
}
