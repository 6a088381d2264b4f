package scheduling

import (
	"regexp"
	"strings"
	"time"

	"gigbook/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minutesPerDay = 24 * 60

// NormalizePhone strips every non-digit from raw and returns the result,
// which is valid only when exactly 10 digits remain.
func NormalizePhone(raw string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()
	return normalized, len(normalized) == 10
}

// validateSlot enforces one calendar date with a half-open interval inside
// it. Events crossing midnight are not supported; a request whose end does
// not come after its start on the same date is rejected here.
func validateSlot(slot models.TimeSlot) error {
	if slot.Date == "" {
		return invalidField("slot.date", "required")
	}
	if _, err := time.Parse("2006-01-02", slot.Date); err != nil {
		return invalidField("slot.date", "must be YYYY-MM-DD")
	}
	if slot.Start < 0 || slot.End > minutesPerDay {
		return invalidField("slot", "times must fall within the day")
	}
	if slot.Start >= slot.End {
		return invalidField("slot", "end must be after start on the same date")
	}
	return nil
}

func validateContact(contact models.Contact) (models.Contact, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return contact, invalidField("contact.name", "required")
	}
	if !emailPattern.MatchString(contact.Email) {
		return contact, invalidField("contact.email", "must be a valid email address")
	}
	phone, ok := NormalizePhone(contact.Phone)
	if !ok {
		return contact, invalidField("contact.phone", "must contain exactly 10 digits")
	}
	contact.Phone = phone
	return contact, nil
}
