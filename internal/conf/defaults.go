// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "Voyago")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "voyago.log")
	viper.SetDefault("main.log.level", "info")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("database.path", "voyago.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.username", "voyago")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.database", "voyago")

	viper.SetDefault("imagery.unsplash.accesskey", "")
	viper.SetDefault("imagery.pexels.apikey", "")
	viper.SetDefault("imagery.timeout", 10*time.Second)
	viper.SetDefault("imagery.imagesperdestination", 4)
	viper.SetDefault("imagery.imagesperactivity", 2)
	viper.SetDefault("imagery.cache.ttl", 24*time.Hour)
	viper.SetDefault("imagery.cache.capacity", 500)
	viper.SetDefault("imagery.cache.sweepsize", 100)

	viper.SetDefault("ai.groq.apikey", "")
	viper.SetDefault("ai.groq.model", "llama-3.1-8b-instant")
	viper.SetDefault("ai.groq.endpoint", "https://api.groq.com/openai/v1/chat/completions")
	viper.SetDefault("ai.timeout", 30*time.Second)
	viper.SetDefault("ai.cache.ttl", time.Hour)
	viper.SetDefault("ai.cache.capacity", 100)
	viper.SetDefault("ai.cache.sweepsize", 20)
}
