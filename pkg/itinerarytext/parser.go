// Package itinerarytext turns the free-form itinerary text produced by the AI
// provider into a structured day/activity sequence. The parsing is a best-effort
// regex heuristic: it never fails, and unrecognized input degrades to zero days
// so callers can show the cleaned raw text instead.
package itinerarytext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type ParsedDay struct {
	Title      string           `json:"title"`
	Activities []ParsedActivity `json:"activities"`
}

type ParsedActivity struct {
	Time        string `json:"time,omitempty"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

var (
	mdHeaderRe       = regexp.MustCompile(`#{1,6}\s*`)
	mdBracketRe      = regexp.MustCompile(`\[([^\]]+)\]`)
	mdBacktickRe     = regexp.MustCompile("`([^`]+)`")
	leadingSymbolsRe = regexp.MustCompile(`^[#*\-•]+\s*`)
	trailingSymbolRe = regexp.MustCompile(`[*#]+$`)
	symbolOnlyRe     = regexp.MustCompile(`^[#*\-•\s]+$`)
	dayHeaderRe      = regexp.MustCompile(`(?i)day\s*\d+`)
	timePrefixRe     = regexp.MustCompile(`(?i)^(morning|afternoon|evening)`)
)

// CleanMarkup strips common markdown decoration. Lossy by design: it is a
// normalization pass for display and parsing, not a markdown parser.
func CleanMarkup(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	text = mdHeaderRe.ReplaceAllString(text, "")
	text = mdBracketRe.ReplaceAllString(text, "$1")
	text = mdBacktickRe.ReplaceAllString(text, "$1")
	return text
}

type lineKind int

const (
	lineNoise lineKind = iota
	lineDayHeader
	lineActivity
)

// classifyLine decides what a cleaned, non-empty line is. Lines before the
// first day header and short colon-less lines are treated as noise.
func classifyLine(line string, inDay bool) lineKind {
	if dayHeaderRe.MatchString(line) || strings.Contains(line, "DAY") {
		return lineDayHeader
	}
	if !inDay {
		return lineNoise
	}
	if strings.Contains(line, ":") || timePrefixRe.MatchString(line) {
		return lineActivity
	}
	if utf8.RuneCountInString(line) > 10 {
		return lineActivity
	}
	return lineNoise
}

// Parse converts raw itinerary text into an ordered day list. A pure function
// of its input; an empty result means the caller should fall back to rendering
// the raw text verbatim.
func Parse(text string) []ParsedDay {
	days := []ParsedDay{}
	var current *ParsedDay

	for _, raw := range strings.Split(CleanMarkup(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = leadingSymbolsRe.ReplaceAllString(line, "")
		line = trailingSymbolRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" || symbolOnlyRe.MatchString(line) {
			continue
		}

		switch classifyLine(line, current != nil) {
		case lineDayHeader:
			if current != nil {
				days = append(days, *current)
			}
			current = &ParsedDay{Title: line, Activities: []ParsedActivity{}}
		case lineActivity:
			if act, ok := splitActivity(line); ok {
				current.Activities = append(current.Activities, act)
			}
		}
	}

	if current != nil {
		days = append(days, *current)
	}
	return days
}

// splitActivity divides a line at the first colon into a time label and a
// description. A colon with nothing after it makes the line worthless.
func splitActivity(line string) (ParsedActivity, bool) {
	if i := strings.Index(line, ":"); i > 0 {
		desc := strings.TrimSpace(line[i+1:])
		if desc == "" {
			return ParsedActivity{}, false
		}
		return ParsedActivity{
			Time:        strings.TrimSpace(line[:i]),
			Description: desc,
			Location:    ExtractLocation(desc),
		}, true
	}
	return ParsedActivity{
		Description: line,
		Location:    ExtractLocation(line),
	}, true
}
