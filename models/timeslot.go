package models

import "fmt"

// TimeSlot is the occupied window of a booking: one calendar date plus a
// half-open [Start, End) interval in minutes since midnight.
type TimeSlot struct {
	Date  string `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start int    `bson:"start" json:"start"` // minutes from midnight
	End   int    `bson:"end" json:"end"`     // minutes from midnight, exclusive
}

// Overlaps reports whether two slots occupy overlapping time. Slots on
// different dates never conflict. On the same date the intervals are
// half-open, so a slot ending exactly when another begins does not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if ts.Date != other.Date {
		return false
	}
	return ts.Start < other.End && other.Start < ts.End
}

// Clock renders a minutes-from-midnight value as "HH:MM".
func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", ts.Date, Clock(ts.Start), Clock(ts.End))
}
