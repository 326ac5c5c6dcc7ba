// Package model defines the recommendation records shared by the AI
// generator, the enrichment pipeline and the datastore.
package model

import "slices"

// SettlementType classifies a recommended destination.
type SettlementType string

const (
	SettlementCity    SettlementType = "city"
	SettlementTown    SettlementType = "town"
	SettlementVillage SettlementType = "village"
	SettlementResort  SettlementType = "resort"
	SettlementIsland  SettlementType = "island"
)

// ActivityCategory classifies a trip activity.
type ActivityCategory string

const (
	CategoryDining        ActivityCategory = "Dining"
	CategorySightseeing   ActivityCategory = "Sightseeing"
	CategoryActivities    ActivityCategory = "Activities"
	CategoryShopping      ActivityCategory = "Shopping"
	CategoryCulture       ActivityCategory = "Culture"
	CategoryNature        ActivityCategory = "Nature"
	CategoryEntertainment ActivityCategory = "Entertainment"
)

// DestinationRecommendation is a destination suggestion produced by the AI
// generator. The four image slots are empty until the enrichment pipeline
// fills them; an empty slot persists as empty, never recycled from a
// neighbouring slot.
type DestinationRecommendation struct {
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	SettlementType SettlementType `json:"settlement_type"`
	Category       string         `json:"category"`
	Tags           []string       `json:"tags"`
	EstimatedCost  float64        `json:"estimated_cost"`
	Rating         float64        `json:"rating"`
	BudgetScore    int            `json:"budget_score"`

	Image  string `json:"image,omitempty"`
	Image2 string `json:"image2,omitempty"`
	Image3 string `json:"image3,omitempty"`
	Image4 string `json:"image4,omitempty"`
}

// ImageSlots returns the image fields in slot order.
func (r *DestinationRecommendation) ImageSlots() []string {
	return []string{r.Image, r.Image2, r.Image3, r.Image4}
}

// Clone returns an independent copy. Enrichment mutates records in place,
// so anything handing the same record to multiple consumers must clone.
func (r *DestinationRecommendation) Clone() *DestinationRecommendation {
	c := *r
	c.Tags = slices.Clone(r.Tags)
	return &c
}

// FilledImageCount returns how many image slots are populated.
func (r *DestinationRecommendation) FilledImageCount() int {
	count := 0
	for _, s := range r.ImageSlots() {
		if s != "" {
			count++
		}
	}
	return count
}

// ActivityRecommendation is a trip activity suggestion for an ongoing trip.
// Images and CoverImage are empty until enrichment.
type ActivityRecommendation struct {
	Title         string           `json:"title"`
	Destination   string           `json:"destination"`
	Category      ActivityCategory `json:"category"`
	BestTime      string           `json:"bestTime"`
	EstimatedCost string           `json:"estimatedCost"`
	Description   string           `json:"description"`
	CulturalTips  []string         `json:"culturalTips"`
	InItinerary   bool             `json:"inItinerary"`

	Images     []string `json:"images"`
	CoverImage string   `json:"coverImage,omitempty"`
}

// Clone returns an independent copy, including the slice fields.
func (a *ActivityRecommendation) Clone() *ActivityRecommendation {
	c := *a
	c.CulturalTips = slices.Clone(a.CulturalTips)
	c.Images = slices.Clone(a.Images)
	return &c
}
