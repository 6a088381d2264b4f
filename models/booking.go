package models

import "time"

// Contact is the client requesting the event.
type Contact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"` // normalized to 10 digits
}

// Venue is where the event takes place.
type Venue struct {
	Name     string `bson:"name" json:"name"`
	Location string `bson:"location" json:"location"`
}

// Booking is a client's requested event occupying one TimeSlot.
// Price is assigned once at creation from the pricing rules and never
// recomputed. Bookings are never hard-deleted; cancellation is a status
// transition to Cancelled.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	Contact    Contact       `bson:"contact" json:"contact"`
	Slot       TimeSlot      `bson:"slot" json:"slot"`
	EventType  string        `bson:"event_type" json:"eventType"`
	Venue      Venue         `bson:"venue" json:"venue"`
	GuestCount int           `bson:"guest_count" json:"guestCount"`
	Status     BookingStatus `bson:"status" json:"status"`
	Price      int           `bson:"price" json:"price"` // whole dollars
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
}

// DepositPaid is derived from status rather than stored as its own flag,
// so the two can never disagree.
func (b *Booking) DepositPaid() bool {
	return b.Status == StatusDepositPaid || b.Status == StatusCompleted
}

// BookingResponse is the wire shape of a booking, with the derived deposit
// flag and the amount the payment collaborator expects.
type BookingResponse struct {
	Booking
	DepositPaid   bool `json:"depositPaid"`
	DepositAmount int  `json:"depositAmount"`
}
