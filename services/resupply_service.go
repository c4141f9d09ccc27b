package services

import (
	"fmt"
	"sort"
	"time"
)

// ResupplyStatus describes where an item's next delivery sits relative to a
// look-ahead window starting today.
type ResupplyStatus struct {
	Included      bool   `json:"included"`
	DaysRemaining *int   `json:"days_remaining"`
	Message       string `json:"message"`
}

// ToUTCDate normalizes a timestamp to UTC midnight. All window arithmetic
// happens on normalized dates so time zones and DST cannot shift a day.
func ToUTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InResupplyWindow reports whether a delivery date falls within the closed
// interval [today, today+windowDays], plus the whole days remaining until it.
// DaysRemaining is negative for overdue deliveries and nil when no date is
// set. Precondition: windowDays >= 0. Pure, safe for concurrent callers.
func InResupplyWindow(today time.Time, windowDays int, nextResupplyDate *time.Time) ResupplyStatus {
	if nextResupplyDate == nil {
		return ResupplyStatus{Message: "delivery pending, no date set"}
	}

	today = ToUTCDate(today)
	next := ToUTCDate(*nextResupplyDate)

	// Exact whole days: both ends are UTC midnights
	days := int(next.Sub(today) / (24 * time.Hour))
	included := days >= 0 && days <= windowDays

	var message string
	switch {
	case days < 0:
		message = "delivery overdue, contact supplier"
	case days == 0:
		message = "delivery expected today"
	case days == 1:
		message = "delivery expected tomorrow, verify receipt"
	default:
		message = fmt.Sprintf("delivery expected in %d days, check schedule", days)
	}

	return ResupplyStatus{Included: included, DaysRemaining: &days, Message: message}
}

// SortByResupplyDate orders items by next resupply date ascending, with item
// ID as a stable tiebreak. Items without a date sort last.
func SortByResupplyDate(items []InventoryRecord) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].NextResupplyDate, items[j].NextResupplyDate
		switch {
		case a == nil && b == nil:
			return items[i].ID < items[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return items[i].ID < items[j].ID
		}
		return a.Before(*b)
	})
}
