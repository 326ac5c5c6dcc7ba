package datastore

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/errors"
)

// SQLiteStore implements the datastore on SQLite.
type SQLiteStore struct {
	DataStore
	Settings *conf.Settings
}

// Open connects to the SQLite database file and migrates the schema.
func (store *SQLiteStore) Open() error {
	path := store.Settings.Database.Path
	if path == "" {
		path = "voyago.db"
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig(store.Settings.Debug))
	if err != nil {
		return errors.New(fmt.Errorf("opening SQLite database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("path", path).
			Build()
	}

	store.DB = db
	store.log.Info("SQLite database opened", "path", path)
	return performAutoMigration(db, "SQLite")
}

// Close is a no-op for SQLite; the file handle is released with the process.
func (store *SQLiteStore) Close() error {
	return nil
}
