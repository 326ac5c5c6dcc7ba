package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitInstallsLoggers(t *testing.T) {
	Init(slog.LevelInfo)

	assert.NotNil(t, Structured())
	assert.NotNil(t, HumanReadable())

	// Silence the remainder of the test run.
	SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
}

func TestSetOutputCapturesStructuredLogs(t *testing.T) {
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	ForService("imagery").Info("Fetch completed", "count", 4)

	var line map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &line))
	assert.Equal(t, "Fetch completed", line["msg"])
	assert.Equal(t, "imagery", line["service"])
	assert.Equal(t, float64(4), line["count"])

	HumanReadable().Warn("readable output")
	assert.Contains(t, human.String(), "readable output")
}

func TestForServiceBeforeInit(t *testing.T) {
	prev := structuredLogger
	structuredLogger = nil
	t.Cleanup(func() { structuredLogger = prev })

	assert.NotNil(t, ForService("bootstrap"))
}
