package request_models

type GenerateItineraryRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Budget      string `json:"budget"`
}
