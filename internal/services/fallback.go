package services

import (
	"fmt"
	"strings"
)

// buildFallbackItinerary is the deterministic demo itinerary substituted when
// the provider fails. Days 1-3 are always present; day 4 appears when days>3,
// day 5 when days>4, and a collapsed "DAYS 6-N" block when days>5.
func buildFallbackItinerary(destination string, days int, budget string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `🌍 %s - %d Day %s Travel Itinerary

📅 DAY 1: Arrival & City Center
• Morning: Arrive and check into accommodation
• Afternoon: Explore the main city center and historic district
• Evening: Welcome dinner at a local restaurant
• Budget tip: Use public transportation for cost-effective travel

📅 DAY 2: Cultural Exploration
• Morning: Visit the most famous museum or cultural site
• Afternoon: Walking tour of historic neighborhoods
• Evening: Local food market experience
• Must-try: Traditional local cuisine

📅 DAY 3: Nature & Outdoor Activities
• Morning: Visit nearby parks or natural attractions
• Afternoon: Outdoor activities (hiking, cycling, or sightseeing)
• Evening: Sunset viewing at a scenic location
• Photo opportunity: Best viewpoints in the city

`, destination, days, budget)

	if days > 3 {
		sb.WriteString(`📅 DAY 4: Local Experiences
• Morning: Local market or shopping district
• Afternoon: Cultural workshop or local experience
• Evening: Entertainment district exploration

`)
	}

	if days > 4 {
		sb.WriteString(`📅 DAY 5: Day Trip
• Full day: Nearby town or attraction day trip
• Transportation: Train or bus recommendations
• Highlights: Top attractions outside the main city

`)
	}

	if days > 5 {
		fmt.Fprintf(&sb, `📅 DAYS 6-%d: Extended Exploration
• Additional days for deeper exploration
• Recommended: Mix of relaxation and adventure
• Local connections: Meet locals and learn about culture
• Shopping: Souvenirs and local products

`, days)
	}

	fmt.Fprintf(&sb, `🍽️ FOOD RECOMMENDATIONS:
• Local specialties and where to find them
• Budget-friendly options for %s travelers
• Street food safety tips

🚌 TRANSPORTATION:
• Public transport options and costs
• Walking distances between major attractions
• Taxi/rideshare recommendations

💰 BUDGET TIPS for %s Travel:
• Cost-saving strategies
• Free activities and attractions
• Best value accommodations

⚠️ SAFETY & CULTURAL TIPS:
• Local customs to respect
• Safety precautions
• Emergency contacts and phrases

This itinerary is generated by WanderAI - your smart travel companion! 🤖✈️

Note: This is a demo version. For personalized AI-generated itineraries, please ensure AI API access is configured.`,
		strings.ToLower(budget), budget)

	return sb.String()
}
