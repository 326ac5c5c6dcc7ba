package datastore

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/errors"
)

// MySQLStore implements the datastore on MySQL.
type MySQLStore struct {
	DataStore
	Settings *conf.Settings
}

// Open connects to the MySQL server and migrates the schema.
func (store *MySQLStore) Open() error {
	c := store.Settings.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database)

	db, err := gorm.Open(mysql.Open(dsn), gormConfig(store.Settings.Debug))
	if err != nil {
		return errors.New(fmt.Errorf("opening MySQL database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("host", c.Host).
			Context("database", c.Database).
			Build()
	}

	store.DB = db
	store.log.Info("MySQL database opened", "host", c.Host, "database", c.Database)
	return performAutoMigration(db, "MySQL")
}

// Close releases the underlying connection pool.
func (store *MySQLStore) Close() error {
	if store.DB == nil {
		return nil
	}
	sqlDB, err := store.DB.DB()
	if err != nil {
		return errors.New(fmt.Errorf("retrieving DB handle: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return sqlDB.Close()
}
