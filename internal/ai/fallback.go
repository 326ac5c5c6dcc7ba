// fallback.go: curated recommendations served when generation fails.
package ai

import "github.com/voyago/voyago/internal/model"

// FallbackDestinations returns the curated destination set used when the AI
// backend is unreachable or returns garbage. The trip type is stamped onto
// each record so downstream filtering still works.
func FallbackDestinations(tripType string) []*model.DestinationRecommendation {
	recs := []*model.DestinationRecommendation{
		{
			Name:           "Lisbon",
			Location:       "Portugal",
			Title:          "Lisbon, Portugal",
			Description:    "Perfect blend of history, culture, and affordability. Stunning architecture, delicious food, and friendly locals make this ideal for budget-conscious travelers seeking authentic European experiences.",
			SettlementType: model.SettlementCity,
			EstimatedCost:  60,
			Tags:           []string{"Budget-Friendly", "Cultural", "Historic"},
			Rating:         4.3,
			BudgetScore:    45,
		},
		{
			Name:           "Prague",
			Location:       "Czech Republic",
			Title:          "Prague, Czech Republic",
			Description:    "Fairy-tale architecture meets vibrant nightlife in this affordable European gem. Medieval streets, world-class beer, and rich history create unforgettable experiences.",
			SettlementType: model.SettlementCity,
			EstimatedCost:  55,
			Tags:           []string{"Historic", "Affordable", "Architecture"},
			Rating:         4.4,
			BudgetScore:    40,
		},
		{
			Name:           "Bangkok",
			Location:       "Thailand",
			Title:          "Bangkok, Thailand",
			Description:    "Street food paradise with incredible temples and bustling markets. Modern city energy mixed with ancient traditions, perfect for adventurous travelers on any budget.",
			SettlementType: model.SettlementCity,
			EstimatedCost:  35,
			Tags:           []string{"Adventure", "Food", "Cultural"},
			Rating:         4.2,
			BudgetScore:    25,
		},
	}
	for _, rec := range recs {
		rec.Category = tripType
	}
	return recs
}

// FallbackActivities returns the curated activity set anchored to the given
// destination.
func FallbackActivities(destination string) []*model.ActivityRecommendation {
	return []*model.ActivityRecommendation{
		{
			Title:         "Local Market Experience",
			Destination:   destination,
			Category:      model.CategoryCulture,
			BestTime:      "9AM - 12PM",
			EstimatedCost: "$10 - $20",
			Description:   "Immerse yourself in local life at the bustling central market. Taste authentic flavors, interact with vendors, and discover unique local products.",
			CulturalTips: []string{
				"Bring cash as many vendors don't accept cards",
				"Try local breakfast specialties early in the morning",
				"Learn basic greetings in the local language",
				"Bargaining is often expected and appreciated",
			},
		},
		{
			Title:         "Historic City Center Walking Tour",
			Destination:   destination,
			Category:      model.CategorySightseeing,
			BestTime:      "10AM - 2PM",
			EstimatedCost: "$15 - $30",
			Description:   "Discover the city's rich history through its architecture and landmarks. Self-guided or join a local guide for deeper insights.",
			CulturalTips: []string{
				"Wear comfortable walking shoes",
				"Bring water and sun protection",
				"Respect photography rules at religious sites",
				"Consider visiting during less crowded morning hours",
			},
		},
	}
}
