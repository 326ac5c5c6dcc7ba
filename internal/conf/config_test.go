package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load()
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, "Voyago", settings.Main.Name)
	assert.Equal(t, "8080", settings.Server.Port)
	assert.Equal(t, "sqlite", settings.Database.Type)

	assert.Equal(t, 10*time.Second, settings.Imagery.Timeout)
	assert.Equal(t, 4, settings.Imagery.ImagesPerDestination)
	assert.Equal(t, 2, settings.Imagery.ImagesPerActivity)
	assert.Equal(t, 24*time.Hour, settings.Imagery.Cache.TTL)
	assert.Equal(t, 500, settings.Imagery.Cache.Capacity)
	assert.Equal(t, 100, settings.Imagery.Cache.SweepSize)

	assert.Equal(t, time.Hour, settings.AI.Cache.TTL)
	assert.Equal(t, 100, settings.AI.Cache.Capacity)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("VOYAGO_IMAGERY_UNSPLASH_ACCESSKEY", "test-key")
	t.Setenv("VOYAGO_SERVER_PORT", "9090")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", settings.Imagery.Unsplash.AccessKey)
	assert.Equal(t, "9090", settings.Server.Port)
}

func TestSettingSingleton(t *testing.T) {
	s1 := Setting()
	s2 := Setting()
	require.NotNil(t, s1)
	assert.Same(t, s1, s2)
}
