package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice_ExactRules(t *testing.T) {
	assert.Equal(t, 1500, Price("Wedding Ceremony & Reception"))
	assert.Equal(t, 1000, Price("Wedding Ceremony"))
	assert.Equal(t, 1000, Price("Wedding Reception"))
	assert.Equal(t, 1000, Price("Bridal Shower"))
	assert.Equal(t, 500, Price("Engagement Party"))
	assert.Equal(t, 500, Price("Company Holiday Party"))
	assert.Equal(t, 500, Price("Prom"))
}

func TestPrice_DefaultForUnknownTypes(t *testing.T) {
	assert.Equal(t, 400, Price("Birthday Party"))
	assert.Equal(t, 400, Price("Corporate Mixer"))
	assert.Equal(t, 400, Price(""))
}

func TestPrice_WeddingKeywordFallback(t *testing.T) {
	// Not in the exact list, still wedding-classified by prefix.
	assert.True(t, IsWeddingEvent("Wedding Afterparty"))
	assert.Equal(t, 1000, Price("Wedding Afterparty"))

	assert.True(t, IsWeddingEvent("bridal brunch"))
	assert.Equal(t, 1000, Price("bridal brunch"))
}

func TestPrice_FlatRateBeatsKeywordFallback(t *testing.T) {
	// "Engagement Party" starts with a wedding keyword, but the $500 set
	// matches first.
	assert.True(t, IsWeddingEvent("Engagement Party"))
	assert.Equal(t, 500, Price("Engagement Party"))
}

func TestIsWeddingEvent_PrefixOnly(t *testing.T) {
	assert.True(t, IsWeddingEvent("WEDDING gala"))
	// Keyword in the middle is not a prefix match.
	assert.False(t, IsWeddingEvent("Post-Wedding Brunch"))
	assert.False(t, IsWeddingEvent("Birthday Party"))
}

func TestPrice_Purity(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1500, Price("Wedding Ceremony & Reception"))
		assert.Equal(t, 400, Price("Birthday Party"))
	}
}

func TestDepositAmount(t *testing.T) {
	assert.Equal(t, 750, DepositAmount(1500))
	assert.Equal(t, 500, DepositAmount(1000))
	assert.Equal(t, 200, DepositAmount(400))
	// Odd prices round to the nearest dollar.
	assert.Equal(t, 188, DepositAmount(375))
}
