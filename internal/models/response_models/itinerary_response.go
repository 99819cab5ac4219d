package response_models

import "time"

type ItineraryResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Budget      string    `json:"budget"`
	Itinerary   string    `json:"itinerary"`
	MapsLink    string    `json:"mapsLink"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GenerateResponse struct {
	Message   string            `json:"message"`
	Itinerary ItineraryResponse `json:"itinerary"`
}
