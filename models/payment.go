package models

import "time"

// DepositQuote is what the payment collaborator consumes: the full price and
// the deposit derived from it. The scheduling core only supplies the numbers.
type DepositQuote struct {
	BookingID     string `json:"bookingId"`
	Price         int    `json:"price"`
	DepositAmount int    `json:"depositAmount"`
}

// DepositIntent is the collaborator's answer: a payment intent the client UI
// can complete with its own card flow.
type DepositIntent struct {
	IntentID     string    `json:"intentId"`
	ClientSecret string    `json:"clientSecret"`
	Amount       int       `json:"amount"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReminderPayload is the asynq task body for an upcoming-event reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	EventType string `json:"eventType"`
	Date      string `json:"date"`
	Start     int    `json:"start"`
	VenueName string `json:"venueName"`
}
