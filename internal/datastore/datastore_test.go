package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/errors"
	"github.com/voyago/voyago/internal/model"
)

func newTestStore(t *testing.T) Interface {
	t.Helper()
	settings := &conf.Settings{}
	settings.Database.Type = "sqlite"
	settings.Database.Path = filepath.Join(t.TempDir(), "test.db")

	store, err := New(settings)
	require.NoError(t, err)
	require.NoError(t, store.Open())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	settings := &conf.Settings{}
	settings.Database.Type = "oracle"

	_, err := New(settings)
	require.Error(t, err)

	var ee *errors.EnhancedError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, errors.CategoryConfiguration, ee.GetCategory())
}

func TestSaveAndListDestinations(t *testing.T) {
	store := newTestStore(t)

	recs := []*model.DestinationRecommendation{
		{
			Name:           "Paris",
			Location:       "France",
			Title:          "Paris, France",
			Description:    "City of light.",
			SettlementType: model.SettlementCity,
			Category:       "leisure",
			Tags:           []string{"Cultural", "Romantic"},
			EstimatedCost:  150,
			Rating:         4.5,
			BudgetScore:    70,
			Image:          "https://img/u1",
			Image2:         "https://img/u2",
		},
	}
	require.NoError(t, store.SaveDestinations(recs))

	stored, err := store.Destinations(10)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	got := stored[0].ToModel()
	assert.Equal(t, "Paris", got.Name)
	assert.Equal(t, model.SettlementCity, got.SettlementType)
	assert.Equal(t, []string{"Cultural", "Romantic"}, got.Tags)
	assert.Equal(t, "https://img/u1", got.Image)
	assert.Equal(t, "https://img/u2", got.Image2)
	assert.Empty(t, got.Image3, "unfilled image slots persist as empty")
	assert.Empty(t, got.Image4)
}

func TestSaveDestinationsEmptyBatch(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveDestinations(nil))

	stored, err := store.Destinations(10)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDeleteDestination(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveDestinations([]*model.DestinationRecommendation{
		{Name: "Prague", Location: "Czech Republic", Title: "Prague, Czech Republic", Description: "d"},
	}))

	stored, err := store.Destinations(10)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	require.NoError(t, store.DeleteDestination(stored[0].ID))

	stored, err = store.Destinations(10)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDeleteDestinationNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteDestination(12345)
	require.Error(t, err)

	var ee *errors.EnhancedError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, errors.CategoryNotFound, ee.GetCategory())
}

func TestSaveAndListActivities(t *testing.T) {
	store := newTestStore(t)

	acts := []*model.ActivityRecommendation{
		{
			Title:         "Seine River Cruise",
			Destination:   "Paris, France",
			Category:      model.CategorySightseeing,
			BestTime:      "Sunset",
			EstimatedCost: "$20 - $35",
			Description:   "Glide past illuminated landmarks.",
			CulturalTips:  []string{"Book ahead in summer"},
			Images:        []string{"https://img/a1", "https://img/a2"},
			CoverImage:    "https://img/a1",
		},
		{
			Title:       "Tea Ceremony",
			Destination: "Kyoto, Japan",
			Category:    model.CategoryCulture,
			Description: "d",
		},
	}
	require.NoError(t, store.SaveActivities(acts))

	parisOnly, err := store.Activities("Paris, France", 10)
	require.NoError(t, err)
	require.Len(t, parisOnly, 1)

	got := parisOnly[0].ToModel()
	assert.Equal(t, "Seine River Cruise", got.Title)
	assert.Equal(t, model.CategorySightseeing, got.Category)
	assert.Equal(t, []string{"https://img/a1", "https://img/a2"}, got.Images)
	assert.Equal(t, "https://img/a1", got.CoverImage)

	all, err := store.Activities("", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteActivity(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveActivities([]*model.ActivityRecommendation{
		{Title: "Walk", Destination: "Rome, Italy", Category: model.CategorySightseeing, Description: "d"},
	}))

	stored, err := store.Activities("", 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	require.NoError(t, store.DeleteActivity(stored[0].ID))

	stored, err = store.Activities("", 10)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
