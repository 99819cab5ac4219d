package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget tiers form a closed set; they only affect prompt phrasing.
const (
	BudgetTierBudget   = "Budget"
	BudgetTierMidRange = "Mid-range"
	BudgetTierLuxury   = "Luxury"
)

func IsValidBudgetTier(budget string) bool {
	switch budget {
	case BudgetTierBudget, BudgetTierMidRange, BudgetTierLuxury:
		return true
	}
	return false
}

// Itinerary is created once on generation and never mutated afterwards.
type Itinerary struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Destination string             `bson:"destination"`
	Days        int                `bson:"days"`
	Budget      string             `bson:"budget"`
	Itinerary   string             `bson:"itinerary"`
	MapsLink    string             `bson:"maps_link"`
	CreatedAt   time.Time          `bson:"created_at"`
}
