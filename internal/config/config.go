package config

import (
	"time"

	"github.com/hackebrot/go-timeline/pkg/clock"
)

// PlayerConfig holds configuration for playing a timeline script.
type PlayerConfig struct {
	ScriptPath    string        // Path to the YAML timeline script
	FrameInterval time.Duration // Interval between clock ticks (default 16ms)
	LogLevel      string        // Log level: debug, info, warn, error
	LogFormat     string        // Log format: text, json
	NoBars        bool          // Disable progress bar rendering
	Loops         int           // Extra plays after the first one
}

// DefaultPlayerConfig returns sensible defaults.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		FrameInterval: clock.DefaultFrameInterval,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}
