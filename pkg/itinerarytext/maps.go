package itinerarytext

import (
	"net/url"
	"strings"
)

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// encodeQuery percent-encodes like the browser's encodeURIComponent: spaces
// become %20, never +.
func encodeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MapSearchURL builds the map-search link stored on an itinerary at creation.
func MapSearchURL(destination string) string {
	return mapsSearchBase + encodeQuery(destination)
}

// DirectionsURL builds a map-search link for one activity. The place-type
// suffix is keyword sniffing over the activity text, first rule wins; the
// result is a hint, not a verified place reference.
func DirectionsURL(location, destination, activity string) string {
	if location == "" {
		return ""
	}

	query := location + ", " + destination

	lower := strings.ToLower(activity)
	switch {
	case strings.Contains(lower, "museum"):
		query += " museum"
	case strings.Contains(lower, "temple"), strings.Contains(lower, "church"), strings.Contains(lower, "mosque"):
		query += " religious site"
	case strings.Contains(lower, "restaurant"), strings.Contains(lower, "food"), strings.Contains(lower, "dinner"), strings.Contains(lower, "lunch"):
		query += " restaurant"
	case strings.Contains(lower, "market"), strings.Contains(lower, "shopping"):
		query += " market"
	case strings.Contains(lower, "beach"):
		query += " beach"
	case strings.Contains(lower, "park"), strings.Contains(lower, "garden"):
		query += " park"
	}

	return mapsSearchBase + encodeQuery(query)
}
