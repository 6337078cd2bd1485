package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes from a JSON string such as "150ms" or from integer nanoseconds
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "[Duration] invalid duration %s", data)
	}
	*d = Duration(n)
	return nil
}

// Config holds the configuration for a simulation run
type Config struct {
	Title            string   `json:"title"`
	Pattern          string   `json:"pattern"`
	InputFile        string   `json:"input_file"`
	Rows             int      `json:"rows"`
	Columns          int      `json:"columns"`
	OriginRow        int      `json:"origin_row"`
	OriginColumn     int      `json:"origin_column"`
	Generations      int      `json:"generations"`
	FrameRate        Duration `json:"frame_rate"`
	StopOnStagnation bool     `json:"stop_on_stagnation"`
	HistorySize      int      `json:"history_size"`
	UseMemoryPool    bool     `json:"use_memory_pool"`
}

// DefaultConfig returns the blinker demo: a horizontal line centred on a 5x5 board, two generations
func DefaultConfig() Config {
	return Config{
		Pattern:      "blinker",
		Rows:         5,
		Columns:      5,
		OriginRow:    2,
		OriginColumn: 1,
		Generations:  2,
		HistorySize:  5,
	}
}

// LoadConfig reads a JSON config file over DefaultConfig and validates the result
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] cannot read config %s", filename)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] cannot decode config %s", filename)
	}
	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] config %s", filename)
	}
	return config, nil
}

// Validate rejects settings no run could use
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Columns < 0:
		return errors.Wrapf(ErrInvalidConfig, "board size %dx%d is negative", c.Rows, c.Columns)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "generations %d is negative", c.Generations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame rate %v is negative", time.Duration(c.FrameRate))
	case c.HistorySize < 1:
		return errors.Wrapf(ErrInvalidConfig, "history size %d must be at least 1", c.HistorySize)
	case c.InputFile == "" && c.Pattern == "":
		return errors.Wrap(ErrInvalidConfig, "one of pattern or input_file is required")
	}
	return nil
}
