// prompts.go: traveler profile context and prompt templates.
package ai

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Profile describes the traveler a generation request is personalized for.
type Profile struct {
	TripType           string
	Budget             float64  // daily budget in USD, 0 when unknown
	RecentDestinations []string // most recent first
	PreferredTripTypes []string
	TravelStyle        string
	GroupType          string
	Interests          string
}

// BudgetCategory maps a numeric daily budget onto a coarse tier.
func (p *Profile) BudgetCategory() string {
	switch {
	case p.Budget <= 0:
		return "moderate"
	case p.Budget < 50:
		return "budget"
	case p.Budget < 100:
		return "moderate"
	case p.Budget < 200:
		return "premium"
	default:
		return "luxury"
	}
}

// context renders the profile as prompt text, one fact per line.
func (p *Profile) context() string {
	var parts []string

	if len(p.RecentDestinations) > 0 {
		recent := p.RecentDestinations
		if len(recent) > 5 {
			recent = recent[:5]
		}
		parts = append(parts, "Recent destinations: "+strings.Join(recent, ", "))
	} else {
		parts = append(parts, "New traveler with no past trips")
	}
	if len(p.PreferredTripTypes) > 0 {
		parts = append(parts, "Preferred trip types: "+strings.Join(p.PreferredTripTypes, ", "))
	}
	if p.TravelStyle != "" {
		parts = append(parts, "Travel style: "+p.TravelStyle)
	}
	if p.GroupType != "" {
		parts = append(parts, "Usually travels: "+p.GroupType)
	}
	if p.Interests != "" {
		parts = append(parts, "Interests: "+p.Interests)
	}

	return strings.Join(parts, "\n")
}

// destinationCacheKey derives a cache key from the profile facts that
// influence generation.
func destinationCacheKey(p *Profile) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(p.context()))
	return fmt.Sprintf("dest:%x:%s:%s", h.Sum64(), p.BudgetCategory(), p.TripType)
}

func destinationPrompt(p *Profile) string {
	budgetText := p.BudgetCategory() + " range"
	if p.Budget > 0 {
		budgetText = fmt.Sprintf("$%.0f/day", p.Budget)
	}

	return fmt.Sprintf(`Based on this traveler's profile:
%s

Trip Type: %s
Budget: %s

Recommend 5 diverse destinations that match their profile. Return ONLY valid JSON in this EXACT format:

{
    "recommendations": [
        {
            "name": "Paris",
            "location": "France",
            "title": "Paris, France",
            "description": "Compelling 2-3 sentence description explaining why this destination matches their travel profile",
            "settlement_type": "city",
            "estimated_cost": 150,
            "tags": ["Cultural", "Romantic", "Historic"],
            "rating": 4.5,
            "budget_score": 70
        }
    ]
}

REQUIREMENTS:
- name: City/destination name only (e.g., "Tokyo", "Santorini")
- location: Country or region (e.g., "Japan", "Greece")
- title: Format as "City, Country" (e.g., "Tokyo, Japan")
- description: 150-300 characters, personalized to their travel history
- settlement_type: Choose from "city", "town", "village", "resort", "island"
- estimated_cost: Realistic daily budget in USD (accommodation + meals + activities)
- tags: 2-4 descriptive tags (Cultural, Adventure, Budget-Friendly, Luxury, Historic, Nature, Romantic, etc.)
- rating: Realistic rating 3.5-5.0 based on tourist satisfaction
- budget_score: 1-100 scale (1=very cheap, 100=very expensive)

Ensure variety in locations, budgets, and experiences.`, p.context(), p.TripType, budgetText)
}

func activityPrompt(destination, tripType string, duration int) string {
	return fmt.Sprintf(`For a %d-day %s trip to %s, recommend specific activities, sights, and experiences.

Focus on authentic, local experiences that travelers actually enjoy. Return ONLY valid JSON:

{
    "recommendations": [
        {
            "title": "Specific attraction or activity name",
            "category": "Dining",
            "bestTime": "9AM - 11AM",
            "estimatedCost": "$15 - $25",
            "description": "Detailed 2-3 sentence description explaining what makes this special",
            "culturalTips": [
                "Specific, actionable cultural tip",
                "Another helpful local insight"
            ]
        }
    ]
}

REQUIREMENTS:
- Provide 6-8 diverse recommendations
- category: Choose from "Dining", "Sightseeing", "Activities", "Shopping", "Culture", "Nature", "Entertainment"
- bestTime: Specific time recommendations (e.g., "6PM - 10PM", "Early morning", "Sunset")
- estimatedCost: Realistic price range in local context
- description: 150-400 characters explaining the experience
- culturalTips: 3-4 specific, actionable tips
- Include a mix of well-known and hidden gem locations

Make recommendations feel personal and locally authentic.`, duration, tripType, destination)
}
