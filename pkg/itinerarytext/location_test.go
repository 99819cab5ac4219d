package itinerarytext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocation_PrepositionPattern(t *testing.T) {
	assert.Equal(t, "Eiffel Tower", ExtractLocation("Visit Eiffel Tower"))
	assert.Equal(t, "Le Jules Verne", ExtractLocation("Dinner at Le Jules Verne"))
}

func TestExtractLocation_DelimiterEndsCapture(t *testing.T) {
	assert.Equal(t, "Gateway of India", ExtractLocation("Visit Gateway of India, then the waterfront"))
	assert.Equal(t, "Montmartre", ExtractLocation("Wander in Montmartre, then relax"))
}

func TestExtractLocation_QuotedSubstring(t *testing.T) {
	assert.Equal(t, "Blue Lagoon", ExtractLocation(`See the "Blue Lagoon" before noon`))
}

func TestExtractLocation_LandmarkSuffix(t *testing.T) {
	assert.Equal(t, "Tanah Lot Temple", ExtractLocation("Sunrise photography session, Tanah Lot Temple highlights"))
}

func TestExtractLocation_StoplistRejectsCandidates(t *testing.T) {
	// "Hotel breakfast" has no pattern match and every fallback word is
	// stoplisted or lowercase, so no link is produced.
	assert.Equal(t, "", ExtractLocation("Hotel breakfast"))
	assert.Equal(t, "", ExtractLocation("Check out and depart"))
}

func TestExtractLocation_CapitalizedWordFallback(t *testing.T) {
	// No pattern applies; the first two long capitalized words are joined.
	assert.Equal(t, "Shibuya Harajuku", ExtractLocation("Shibuya crossing then Harajuku shopping street"))
}

func TestExtractLocation_FallbackSkipsShortAndNumericWords(t *testing.T) {
	assert.Equal(t, "", ExtractLocation("Bus 42A ride"))
}

func TestExtractLocation_StripsMarkupBeforeMatching(t *testing.T) {
	assert.Equal(t, "Eiffel Tower", ExtractLocation("Visit **Eiffel Tower**"))
}
