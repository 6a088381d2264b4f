package models

// BookingStatus is the workflow stage of a booking.
type BookingStatus string

const (
	StatusInquiry      BookingStatus = "Inquiry"
	StatusPending      BookingStatus = "Pending"
	StatusContractSent BookingStatus = "ContractSent"
	StatusConfirmed    BookingStatus = "Confirmed"
	StatusDepositPaid  BookingStatus = "DepositPaid"
	StatusCompleted    BookingStatus = "Completed"
	StatusCancelled    BookingStatus = "Cancelled"
)

// AllStatuses lists every recognized status, in workflow display order.
var AllStatuses = []BookingStatus{
	StatusInquiry,
	StatusPending,
	StatusContractSent,
	StatusConfirmed,
	StatusDepositPaid,
	StatusCompleted,
	StatusCancelled,
}

// IsValid reports whether s is one of the recognized statuses.
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s permits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// StatusColors is the fixed status-to-color mapping the calendar UI renders
// with. Presentation only; nothing in the scheduling core reads it.
var StatusColors = map[BookingStatus]string{
	StatusInquiry:      "#9E9E9E",
	StatusPending:      "#FFC107",
	StatusContractSent: "#2196F3",
	StatusConfirmed:    "#4CAF50",
	StatusDepositPaid:  "#009688",
	StatusCompleted:    "#607D8B",
	StatusCancelled:    "#F44336",
}
