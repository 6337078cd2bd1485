package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"pattern":"glider","rows":10,"columns":10,"origin_row":0,"origin_column":0,"generations":28,"frame_rate":"150ms"}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "glider", config.Pattern)
	assert.Equal(t, 10, config.Rows)
	assert.Equal(t, 28, config.Generations)
	assert.Equal(t, Duration(150*time.Millisecond), config.FrameRate)
	assert.Equal(t, DefaultConfig().HistorySize, config.HistorySize)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_IntegerFrameRate(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"frame_rate":1000}`))
	require.NoError(t, err)
	assert.Equal(t, Duration(time.Microsecond), config.FrameRate)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "cannot read config")

	_, err = LoadConfig(writeConfig(t, `{"rows":`))
	assert.ErrorContains(t, err, "cannot decode config")

	_, err = LoadConfig(writeConfig(t, `{"frame_rate":"soon"}`))
	assert.ErrorContains(t, err, "invalid duration")
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"rows":-4}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = LoadConfig(writeConfig(t, `{"pattern":"","history_size":0}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative rows", func(c *Config) { c.Rows = -1 }},
		{"negative generations", func(c *Config) { c.Generations = -3 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -1 }},
		{"empty history", func(c *Config) { c.HistorySize = 0 }},
		{"no source", func(c *Config) { c.Pattern = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			assert.True(t, errors.Is(config.Validate(), ErrInvalidConfig))
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestStats_Update(t *testing.T) {
	s := NewStats()
	s.Update(0, 3)
	s.Update(1, 5)
	s.Update(2, 1)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.Equal(t, 1, s.Population)
	assert.Equal(t, 5, s.PeakPopulation)
	assert.InDelta(t, 3.0, s.AveragePopulation, 1e-9)
}
