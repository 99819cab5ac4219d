package services

import (
	"fmt"
	"strings"
)

// buildItineraryPrompt instructs the provider to answer in the plain-text
// DAY n / Morning / Afternoon / Evening shape the parser understands.
func buildItineraryPrompt(destination string, days int, budget string) string {
	return fmt.Sprintf(`You are WanderAI, a smart travel assistant. Create a detailed %[2]d-day travel itinerary for %[1]s within a %[3]s budget.

IMPORTANT:
- Use PLAIN TEXT only. NO markdown symbols like *, #, **, [], or backticks.
- Include EXACT location names with proper addresses when possible
- Use REAL place names that exist in %[1]s

Format your response EXACTLY like this structure:

DAY 1: Arrival and City Center
Morning: Arrive at airport and check into hotel near city center
Afternoon: Visit Gateway of India at Apollo Bunder and explore the waterfront area
Evening: Dinner at Trishna Restaurant in Fort district and try local seafood specialties

DAY 2: Cultural Exploration
Morning: Visit Chhatrapati Shivaji Maharaj Vastu Sangrahalaya Museum in Fort area
Afternoon: Walking tour of Colaba Causeway market and explore local shops
Evening: Attend cultural performance at National Centre for Performing Arts in Nariman Point

Continue this format for all %[2]d days.

CRITICAL: For each activity, include:
- EXACT names of attractions, restaurants, and locations in %[1]s
- Specific neighborhoods or areas (like "in Bandra", "near Churchgate", "at Marine Drive")
- Real street names or landmarks when mentioning restaurants or shops
- Actual transportation hubs (specific metro stations, bus stops, etc.)

Include:
- Specific attraction names with their exact locations in %[1]s
- Real restaurant names with their neighborhoods
- Actual transportation details (metro lines, bus routes)
- Budget-friendly suggestions for %[4]s travelers
- Cultural insights and local customs
- Safety tips and useful local phrases

Make every location reference REAL and SPECIFIC to %[1]s. Avoid generic names.`,
		destination, days, budget, strings.ToLower(budget))
}
