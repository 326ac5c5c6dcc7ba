// entities.go: persisted recommendation records.
package datastore

import (
	"time"

	"github.com/voyago/voyago/internal/model"
)

// Destination is the persisted form of a destination recommendation. Image
// columns keep whatever enrichment produced; an unfilled slot stays empty.
type Destination struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Name           string `gorm:"index"`
	Location       string
	Title          string
	Description    string   `gorm:"type:text"`
	SettlementType string   `gorm:"index"`
	Category       string   `gorm:"index"`
	Tags           []string `gorm:"serializer:json"`
	EstimatedCost  float64
	Rating         float64
	BudgetScore    int

	Image  string
	Image2 string
	Image3 string
	Image4 string
}

// ToModel converts a stored destination back into the shared record type.
func (d *Destination) ToModel() *model.DestinationRecommendation {
	return &model.DestinationRecommendation{
		Name:           d.Name,
		Location:       d.Location,
		Title:          d.Title,
		Description:    d.Description,
		SettlementType: model.SettlementType(d.SettlementType),
		Category:       d.Category,
		Tags:           d.Tags,
		EstimatedCost:  d.EstimatedCost,
		Rating:         d.Rating,
		BudgetScore:    d.BudgetScore,
		Image:          d.Image,
		Image2:         d.Image2,
		Image3:         d.Image3,
		Image4:         d.Image4,
	}
}

func destinationFromModel(rec *model.DestinationRecommendation) *Destination {
	return &Destination{
		Name:           rec.Name,
		Location:       rec.Location,
		Title:          rec.Title,
		Description:    rec.Description,
		SettlementType: string(rec.SettlementType),
		Category:       rec.Category,
		Tags:           rec.Tags,
		EstimatedCost:  rec.EstimatedCost,
		Rating:         rec.Rating,
		BudgetScore:    rec.BudgetScore,
		Image:          rec.Image,
		Image2:         rec.Image2,
		Image3:         rec.Image3,
		Image4:         rec.Image4,
	}
}

// Activity is the persisted form of an activity recommendation.
type Activity struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Title         string
	Destination   string `gorm:"index"`
	Category      string `gorm:"index"`
	BestTime      string
	EstimatedCost string
	Description   string   `gorm:"type:text"`
	CulturalTips  []string `gorm:"serializer:json"`
	InItinerary   bool

	Images     []string `gorm:"serializer:json"`
	CoverImage string
}

// ToModel converts a stored activity back into the shared record type.
func (a *Activity) ToModel() *model.ActivityRecommendation {
	return &model.ActivityRecommendation{
		Title:         a.Title,
		Destination:   a.Destination,
		Category:      model.ActivityCategory(a.Category),
		BestTime:      a.BestTime,
		EstimatedCost: a.EstimatedCost,
		Description:   a.Description,
		CulturalTips:  a.CulturalTips,
		InItinerary:   a.InItinerary,
		Images:        a.Images,
		CoverImage:    a.CoverImage,
	}
}

func activityFromModel(act *model.ActivityRecommendation) *Activity {
	return &Activity{
		Title:         act.Title,
		Destination:   act.Destination,
		Category:      string(act.Category),
		BestTime:      act.BestTime,
		EstimatedCost: act.EstimatedCost,
		Description:   act.Description,
		CulturalTips:  act.CulturalTips,
		InItinerary:   act.InItinerary,
		Images:        act.Images,
		CoverImage:    act.CoverImage,
	}
}
