// Package conf loads and provides access to application settings.
package conf

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/voyago/voyago/internal/errors"
)

// LogSettings holds log output configuration.
type LogSettings struct {
	Enabled bool   // true to enable file logging
	Path    string // path to log file
	Level   string // debug, info, warn, error
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	Host string
	Port string
}

// DatabaseSettings selects and configures the persistence backend.
type DatabaseSettings struct {
	Type     string // "sqlite" or "mysql"
	Path     string // sqlite database file path
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// UnsplashSettings configures the primary image provider.
type UnsplashSettings struct {
	AccessKey string
}

// PexelsSettings configures the secondary image provider.
type PexelsSettings struct {
	APIKey string
}

// CacheSettings bounds one cache instance.
type CacheSettings struct {
	TTL       time.Duration // entry lifetime
	Capacity  int           // entry count ceiling before a sweep
	SweepSize int           // oldest entries removed per sweep
}

// ImagerySettings configures the image enrichment pipeline.
type ImagerySettings struct {
	Unsplash             UnsplashSettings
	Pexels               PexelsSettings
	Timeout              time.Duration // per provider call
	ImagesPerDestination int
	ImagesPerActivity    int
	Cache                CacheSettings
}

// GroqSettings configures the AI text generation backend.
type GroqSettings struct {
	APIKey   string
	Model    string
	Endpoint string
}

// AISettings configures the recommendation generator.
type AISettings struct {
	Groq    GroqSettings
	Timeout time.Duration
	Cache   CacheSettings
}

// Settings holds the complete application configuration.
type Settings struct {
	Debug bool

	Main struct {
		Name string
		Log  LogSettings
	}

	Server   ServerSettings
	Database DatabaseSettings
	Imagery  ImagerySettings
	AI       AISettings
}

var (
	settingsInstance *Settings
	once             sync.Once
	settingsMutex    sync.RWMutex
)

// Load reads the configuration into a Settings struct. A missing config file
// is not an error; defaults and environment variables apply.
func Load() (*Settings, error) {
	setDefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/voyago")
	viper.AddConfigPath("/etc/voyago")

	viper.SetEnvPrefix("voyago")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.New(fmt.Errorf("reading config file: %w", err)).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build()
		}
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("unmarshaling config: %w", err)).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	settingsMutex.Lock()
	settingsInstance = settings
	settingsMutex.Unlock()

	return settings, nil
}

// Setting returns the shared Settings instance, loading it on first use.
func Setting() *Settings {
	once.Do(func() {
		settingsMutex.RLock()
		loaded := settingsInstance != nil
		settingsMutex.RUnlock()
		if !loaded {
			if _, err := Load(); err != nil {
				panic(fmt.Sprintf("error loading settings: %v", err))
			}
		}
	})
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
