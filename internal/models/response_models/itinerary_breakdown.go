package response_models

// ItineraryBreakdownResponse is the server-side rendering of the heuristic
// text parser: ordered days with per-activity directions links. An empty Days
// slice tells the client to show Raw verbatim.
type ItineraryBreakdownResponse struct {
	Destination string        `json:"destination"`
	Days        []DayResponse `json:"days"`
	Raw         string        `json:"raw"`
}

type DayResponse struct {
	Title      string             `json:"title"`
	Activities []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	Time          string `json:"time,omitempty"`
	Description   string `json:"description"`
	Location      string `json:"location,omitempty"`
	DirectionsURL string `json:"directionsUrl,omitempty"`
}
