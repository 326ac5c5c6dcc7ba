// Package datastore persists recommendation records behind a backend
// agnostic interface. SQLite is the default; MySQL is selectable via
// configuration.
package datastore

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/errors"
	"github.com/voyago/voyago/internal/logging"
	"github.com/voyago/voyago/internal/model"
)

// Interface is the datastore contract the rest of the application depends on.
type Interface interface {
	Open() error
	Close() error

	SaveDestinations(recs []*model.DestinationRecommendation) error
	Destinations(limit int) ([]Destination, error)
	DeleteDestination(id uint) error

	SaveActivities(acts []*model.ActivityRecommendation) error
	Activities(destination string, limit int) ([]Activity, error)
	DeleteActivity(id uint) error
}

// DataStore implements the shared CRUD surface on a gorm handle. Backend
// specific stores embed it and contribute Open/Close.
type DataStore struct {
	DB  *gorm.DB
	log *slog.Logger
}

// New creates the datastore matching the configured backend type.
func New(settings *conf.Settings) (Interface, error) {
	base := DataStore{log: logging.ForService("datastore")}
	switch settings.Database.Type {
	case "sqlite", "":
		return &SQLiteStore{DataStore: base, Settings: settings}, nil
	case "mysql":
		return &MySQLStore{DataStore: base, Settings: settings}, nil
	default:
		return nil, errors.Newf("unsupported database type: %s", settings.Database.Type).
			Component("datastore").
			Category(errors.CategoryConfiguration).
			Build()
	}
}

// gormConfig builds the gorm configuration shared by both backends. Query
// logging only in debug mode.
func gormConfig(debug bool) *gorm.Config {
	level := gormlogger.Silent
	if debug {
		level = gormlogger.Info
	}
	return &gorm.Config{Logger: gormlogger.Default.LogMode(level)}
}

// performAutoMigration creates or updates the schema for all entities.
func performAutoMigration(db *gorm.DB, dialect string) error {
	if err := db.AutoMigrate(&Destination{}, &Activity{}); err != nil {
		return errors.New(fmt.Errorf("migrating %s schema: %w", dialect, err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}

func (ds *DataStore) checkConn() error {
	if ds.DB == nil {
		return errors.Newf("database connection is not initialized").
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}

// SaveDestinations stores a batch of destination recommendations in one
// transaction.
func (ds *DataStore) SaveDestinations(recs []*model.DestinationRecommendation) error {
	if err := ds.checkConn(); err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}

	entities := make([]*Destination, len(recs))
	for i, rec := range recs {
		entities[i] = destinationFromModel(rec)
	}
	if err := ds.DB.Create(entities).Error; err != nil {
		return errors.New(fmt.Errorf("saving destinations: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	ds.log.Debug("Saved destination recommendations", "count", len(entities))
	return nil
}

// Destinations lists stored destinations, newest first.
func (ds *DataStore) Destinations(limit int) ([]Destination, error) {
	if err := ds.checkConn(); err != nil {
		return nil, err
	}

	var out []Destination
	q := ds.DB.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.New(fmt.Errorf("listing destinations: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return out, nil
}

// DeleteDestination removes one stored destination by id.
func (ds *DataStore) DeleteDestination(id uint) error {
	if err := ds.checkConn(); err != nil {
		return err
	}
	result := ds.DB.Delete(&Destination{}, id)
	if result.Error != nil {
		return errors.New(fmt.Errorf("deleting destination %d: %w", id, result.Error)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	if result.RowsAffected == 0 {
		return errors.Newf("destination %d not found", id).
			Component("datastore").
			Category(errors.CategoryNotFound).
			Build()
	}
	return nil
}

// SaveActivities stores a batch of activity recommendations.
func (ds *DataStore) SaveActivities(acts []*model.ActivityRecommendation) error {
	if err := ds.checkConn(); err != nil {
		return err
	}
	if len(acts) == 0 {
		return nil
	}

	entities := make([]*Activity, len(acts))
	for i, act := range acts {
		entities[i] = activityFromModel(act)
	}
	if err := ds.DB.Create(entities).Error; err != nil {
		return errors.New(fmt.Errorf("saving activities: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	ds.log.Debug("Saved activity recommendations", "count", len(entities))
	return nil
}

// Activities lists stored activities, optionally filtered by destination,
// newest first.
func (ds *DataStore) Activities(destination string, limit int) ([]Activity, error) {
	if err := ds.checkConn(); err != nil {
		return nil, err
	}

	var out []Activity
	q := ds.DB.Order("created_at DESC")
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.New(fmt.Errorf("listing activities: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return out, nil
}

// DeleteActivity removes one stored activity by id.
func (ds *DataStore) DeleteActivity(id uint) error {
	if err := ds.checkConn(); err != nil {
		return err
	}
	result := ds.DB.Delete(&Activity{}, id)
	if result.Error != nil {
		return errors.New(fmt.Errorf("deleting activity %d: %w", id, result.Error)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	if result.RowsAffected == 0 {
		return errors.Newf("activity %d not found", id).
			Component("datastore").
			Category(errors.CategoryNotFound).
			Build()
	}
	return nil
}
