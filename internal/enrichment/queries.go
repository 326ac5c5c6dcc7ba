// queries.go: search query derivation from recommendation records.
package enrichment

import (
	"strings"

	"github.com/voyago/voyago/internal/model"
)

// BuildDestinationQuery derives an image search query from a destination
// recommendation: name, location and a category hint, space-joined with
// empty fields skipped.
func BuildDestinationQuery(rec *model.DestinationRecommendation) string {
	parts := make([]string, 0, 3)
	if rec.Name != "" {
		parts = append(parts, rec.Name)
	}
	if rec.Location != "" {
		parts = append(parts, rec.Location)
	}
	parts = append(parts, settlementHint(rec.SettlementType))
	return strings.Join(parts, " ")
}

// settlementHint picks the search keyword that best matches the settlement
// type. Islands photograph as beaches.
func settlementHint(s model.SettlementType) string {
	switch s {
	case model.SettlementIsland, model.SettlementType("beach"):
		return "beach"
	case model.SettlementResort:
		return "resort"
	default:
		return "travel"
	}
}

// BuildActivityQuery derives an image search query from an activity. For
// place-bound categories the destination disambiguates the title
// ("Eiffel Tower Paris, France"); for generic activities the title alone
// searches better.
func BuildActivityQuery(act *model.ActivityRecommendation) string {
	switch act.Category {
	case model.CategorySightseeing, model.CategoryCulture, model.CategoryNature:
		parts := make([]string, 0, 2)
		if act.Title != "" {
			parts = append(parts, act.Title)
		}
		if act.Destination != "" {
			parts = append(parts, act.Destination)
		}
		return strings.Join(parts, " ")
	default:
		return act.Title
	}
}
