package scheduling

import (
	"math"
	"strings"
)

// Canonical pricing table. The rules are ordered and evaluated first match
// wins; an unrecognized event type falls through to the default price rather
// than erroring.

const defaultPrice = 400

// weddingTypes are the exact labels classified as wedding events.
var weddingTypes = map[string]bool{
	"Wedding Ceremony & Reception": true,
	"Wedding Ceremony":             true,
	"Wedding Reception":            true,
	"Bridal Shower":                true,
}

// weddingKeywords classify any other label that starts with one of these,
// case-insensitively. Prefix match only, no substring matching.
var weddingKeywords = []string{"wedding", "bridal", "engagement"}

// flatRateTypes is the fixed $500 set.
var flatRateTypes = map[string]bool{
	"Company Holiday Party":        true,
	"Engagement Party":             true,
	"Bachelor Party":               true,
	"Bachelorette Party":           true,
	"Bachelor/Bachelorette Party":  true,
	"Anniversary Party":            true,
	"Vow Renewal":                  true,
	"Prom":                         true,
	"Homecoming":                   true,
}

// IsWeddingEvent reports whether the event type is wedding-classified:
// either an exact member of the wedding list or, case-insensitively,
// prefixed by one of the wedding keywords.
func IsWeddingEvent(eventType string) bool {
	if weddingTypes[eventType] {
		return true
	}
	lower := strings.ToLower(eventType)
	for _, kw := range weddingKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}

type pricingRule struct {
	matches func(eventType string) bool
	price   int
}

var pricingRules = []pricingRule{
	{func(t string) bool { return t == "Wedding Ceremony & Reception" }, 1500},
	{func(t string) bool { return t == "Wedding Ceremony" || t == "Wedding Reception" }, 1000},
	{func(t string) bool { return t == "Bridal Shower" }, 1000},
	{func(t string) bool { return flatRateTypes[t] }, 500},
	// Keyword fallback catches wedding-labeled types not explicitly listed.
	{IsWeddingEvent, 1000},
}

// Price maps an event type to its quoted price in whole dollars. Pure
// function of its input.
func Price(eventType string) int {
	for _, rule := range pricingRules {
		if rule.matches(eventType) {
			return rule.price
		}
	}
	return defaultPrice
}

// DepositAmount is half the quoted price, rounded, in whole dollars. The
// payment collaborator consumes it as-is.
func DepositAmount(price int) int {
	return int(math.Round(float64(price) * 0.5))
}
