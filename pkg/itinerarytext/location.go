package itinerarytext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	markupSymbolRe = regexp.MustCompile("[*#`\\[\\]]")
	multiSpaceRe   = regexp.MustCompile(`\s+`)

	// Tried in order; the first match whose capture survives the stoplist wins.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:at|to|visit|explore)\s+([A-Z][a-zA-Z\s]+?)(?:\s-|\s\(|$|,)`),
		regexp.MustCompile(`"([^"]+)"`),
		regexp.MustCompile(`(?i)(?:near|in|around)\s+([A-Z][a-zA-Z\s]+?)(?:\s-|\s\(|$|,)`),
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]*(?:Museum|Temple|Fort|Palace|Market|Beach|Park|Gallery|Cathedral|Mosque|Church|Tower|Bridge|Square|Garden|Mall|Center|Station))`),
	}

	// Common words that regularly get captured but are never place names.
	patternStopWords = []string{
		"Morning", "Afternoon", "Evening", "Visit", "Explore", "Take",
		"Dinner", "Lunch", "Breakfast", "Hotel", "Restaurant",
		"Local", "Traditional", "Famous", "Popular",
	}

	fallbackStopWords = append([]string{"Check", "Arrive", "Depart"}, patternStopWords...)
)

// ExtractLocation derives a best-guess place name from activity text. Returns
// an empty string when no plausible candidate is found, which suppresses the
// directions link for that activity.
func ExtractLocation(text string) string {
	cleaned := markupSymbolRe.ReplaceAllString(text, "")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	for _, pattern := range locationPatterns {
		match := pattern.FindStringSubmatch(cleaned)
		if match == nil || match[1] == "" {
			continue
		}
		location := strings.TrimSpace(match[1])
		if !containsStopWord(location) {
			return location
		}
	}

	// Fallback: up to the first two capitalized words found anywhere.
	var picked []string
	for _, word := range strings.Split(cleaned, " ") {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsLower(first) || unicode.IsDigit(first) {
			continue
		}
		if isStopWord(word) {
			continue
		}
		picked = append(picked, word)
		if len(picked) == 2 {
			break
		}
	}
	return strings.Join(picked, " ")
}

func containsStopWord(candidate string) bool {
	for _, word := range patternStopWords {
		if strings.Contains(candidate, word) {
			return true
		}
	}
	return false
}

func isStopWord(word string) bool {
	for _, stop := range fallbackStopWords {
		if word == stop {
			return true
		}
	}
	return false
}
