package ledger

import (
	"math"
	"time"

	"cartera/internal/core/types"
)

// Priority is the collection-urgency tag derived from aging and balance.
// It drives the collection workflow ordering, so the policy below must not
// be changed without coordinating with the business owner.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// highPriorityOverdueDays is the mora threshold after which an unpaid
// document escalates from MEDIUM to HIGH.
const highPriorityOverdueDays = 100

// AgingClassification describes how an open document stands against its due
// date as of a given day.
type AgingClassification struct {
	// DaysRemaining is dueDate minus today in whole days; negative when
	// the document is past due.
	DaysRemaining int `json:"daysRemaining"`

	IsOverdue  bool `json:"isOverdue"`
	IsDueToday bool `json:"isDueToday"`

	Priority Priority `json:"priority"`
}

// ClassifyAging classifies an open document by due date and outstanding
// balance. The reference day is an explicit parameter so results are
// deterministic and testable without wall-clock mocking.
//
// Both dates are truncated to local midnight before subtracting, and the
// day difference is rounded: DST shifts and time-of-day noise can make the
// raw difference a few hours off a whole day, and truncation plus rounding
// keeps same-calendar-day inputs at exactly zero.
func ClassifyAging(dueDate time.Time, balance types.Money, today time.Time) AgingClassification {
	due := atMidnight(dueDate)
	now := atMidnight(today)

	days := int(math.Round(due.Sub(now).Hours() / 24))

	c := AgingClassification{
		DaysRemaining: days,
		IsOverdue:     days < 0,
		IsDueToday:    days == 0,
	}

	switch {
	case balance.Sign() <= 0:
		// Nothing owed: never escalate, whatever the age.
		c.Priority = PriorityLow
	case days < 0 && -days >= highPriorityOverdueDays:
		c.Priority = PriorityHigh
	case days < 0:
		c.Priority = PriorityMedium
	default:
		c.Priority = PriorityLow
	}

	return c
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
