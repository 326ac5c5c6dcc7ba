// handlers.go: recommendation API handlers. Each generation handler runs the
// full pipeline: generate, enrich with images, persist, return.
package httpcontroller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyago/voyago/internal/ai"
	"github.com/voyago/voyago/internal/model"
)

type destinationRequest struct {
	TripType           string   `json:"trip_type"`
	Budget             float64  `json:"budget"`
	RecentDestinations []string `json:"recent_destinations"`
	PreferredTripTypes []string `json:"preferred_trip_types"`
	TravelStyle        string   `json:"travel_style"`
	GroupType          string   `json:"group_type"`
	Interests          string   `json:"interests"`
}

type activityRequest struct {
	Destination string `json:"destination"`
	TripType    string `json:"trip_type"`
	Duration    int    `json:"duration"`
}

type listResponse struct {
	Destinations []*model.DestinationRecommendation `json:"destinations"`
	Activities   []*model.ActivityRecommendation    `json:"activities"`
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleDestinationRecommendations generates destination suggestions for the
// posted traveler profile, enriches them with images and persists the batch.
func (s *Server) handleDestinationRecommendations(c echo.Context) error {
	var req destinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.TripType == "" {
		req.TripType = "leisure"
	}

	ctx := c.Request().Context()
	profile := &ai.Profile{
		TripType:           req.TripType,
		Budget:             req.Budget,
		RecentDestinations: req.RecentDestinations,
		PreferredTripTypes: req.PreferredTripTypes,
		TravelStyle:        req.TravelStyle,
		GroupType:          req.GroupType,
		Interests:          req.Interests,
	}

	recs := s.Generator.DestinationRecommendations(ctx, profile)
	recs = s.Enricher.EnrichDestinations(ctx, recs, s.Settings.Imagery.ImagesPerDestination)

	if err := s.DS.SaveDestinations(recs); err != nil {
		// Persistence failure must not cost the client their results.
		s.log.Error("Failed to persist destination recommendations", "error", err)
	}

	return c.JSON(http.StatusOK, recs)
}

// handleActivityRecommendations generates activity suggestions for an
// ongoing trip, enriches them with images and persists the batch.
func (s *Server) handleActivityRecommendations(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "destination is required")
	}
	if req.TripType == "" {
		req.TripType = "leisure"
	}
	if req.Duration <= 0 {
		req.Duration = 3
	}

	ctx := c.Request().Context()
	acts := s.Generator.ActivityRecommendations(ctx, req.Destination, req.TripType, req.Duration)
	acts = s.Enricher.EnrichActivities(ctx, acts, s.Settings.Imagery.ImagesPerActivity)

	if err := s.DS.SaveActivities(acts); err != nil {
		s.log.Error("Failed to persist activity recommendations", "error", err)
	}

	return c.JSON(http.StatusOK, acts)
}

// handleListRecommendations returns previously stored recommendations,
// newest first. ?destination= filters activities.
func (s *Server) handleListRecommendations(c echo.Context) error {
	const listLimit = 50

	stored, err := s.DS.Destinations(listLimit)
	if err != nil {
		s.log.Error("Failed to list destinations", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "listing recommendations failed")
	}
	activities, err := s.DS.Activities(c.QueryParam("destination"), listLimit)
	if err != nil {
		s.log.Error("Failed to list activities", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "listing recommendations failed")
	}

	resp := listResponse{
		Destinations: make([]*model.DestinationRecommendation, len(stored)),
		Activities:   make([]*model.ActivityRecommendation, len(activities)),
	}
	for i := range stored {
		resp.Destinations[i] = stored[i].ToModel()
	}
	for i := range activities {
		resp.Activities[i] = activities[i].ToModel()
	}
	return c.JSON(http.StatusOK, resp)
}
