package models

import "time"

// BookingDraft is a partially completed intake form, keyed by the client's
// session so a half-filled multi-step form survives a page reload.
type BookingDraft struct {
	Contact    Contact   `json:"contact"`
	Slot       TimeSlot  `json:"slot"`
	EventType  string    `json:"eventType"`
	Venue      Venue     `json:"venue"`
	GuestCount int       `json:"guestCount"`
	Notes      string    `json:"notes,omitempty"`
	Step       int       `json:"step"`
	SavedAt    time.Time `json:"savedAt"`
}
