// Package config loads the TOML configuration. Everything has a working
// default: windclock runs with no config file at all.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/spectrum"
)

// Hand configures one clock hand. Spectrum and Mode are strings at the
// file boundary only; they parse into closed enums before anything else
// sees them.
type Hand struct {
	Role          string  `toml:"role"`     // hour | minute | second
	Cells         int     `toml:"cells"`
	Length        float64 `toml:"length"`
	Spectrum      string  `toml:"spectrum"` // temperature | wind | precipitation
	Mode          string  `toml:"mode"`     // straight | curved | wiggle
	Curve         float64 `toml:"curve"`
	CadenceMillis int     `toml:"cadence_millis"`
}

type Config struct {
	Seed           uint64  `toml:"seed"`
	TickMillis     int     `toml:"tick_millis"`
	RefreshMinutes int     `toml:"refresh_minutes"`
	Source         string  `toml:"source"` // synthetic | openmeteo
	Latitude       float64 `toml:"latitude"`
	Longitude      float64 `toml:"longitude"`
	Chime          bool    `toml:"chime"`
	Ornament       bool    `toml:"ornament"`
	Hands          []Hand  `toml:"hands"`
}

// Default mirrors the classic layout: precipitation hour hand,
// temperature minute hand, and a wind-driven wiggling second hand.
func Default() *Config {
	return &Config{
		Seed:           1,
		TickMillis:     int(parameter.BaseTickInterval / time.Millisecond),
		RefreshMinutes: int(parameter.ConditionsRefreshInterval / time.Minute),
		Source:         "synthetic",
		Ornament:       true,
		Hands: []Hand{
			{Role: "hour", Cells: parameter.HourCells, Length: parameter.HourLength,
				Spectrum: "precipitation", Mode: "straight", CadenceMillis: 1000},
			{Role: "minute", Cells: parameter.MinuteCells, Length: parameter.MinuteLength,
				Spectrum: "temperature", Mode: "straight", CadenceMillis: 1000},
			{Role: "second", Cells: parameter.SecondCells, Length: parameter.SecondLength,
				Spectrum: "wind", Mode: "wiggle", CadenceMillis: 100},
		},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// TickInterval returns the base tick cadence
func (c *Config) TickInterval() time.Duration {
	if c.TickMillis <= 0 {
		return parameter.BaseTickInterval
	}
	return time.Duration(c.TickMillis) * time.Millisecond
}

// RefreshInterval returns the conditions refresh cadence
func (c *Config) RefreshInterval() time.Duration {
	if c.RefreshMinutes <= 0 {
		return parameter.ConditionsRefreshInterval
	}
	return time.Duration(c.RefreshMinutes) * time.Minute
}

// ParseTag converts a config spectrum string to its enum
func ParseTag(s string) (spectrum.Tag, error) {
	switch s {
	case "temperature":
		return spectrum.Temperature, nil
	case "wind":
		return spectrum.Wind, nil
	case "precipitation", "rain":
		return spectrum.Precipitation, nil
	}
	return 0, fmt.Errorf("config: unknown spectrum %q", s)
}

// ParseMode converts a config mode string to its enum
func ParseMode(s string) (geometry.Mode, error) {
	switch s {
	case "straight", "":
		return geometry.Straight, nil
	case "curved":
		return geometry.Curved, nil
	case "wiggle":
		return geometry.Wiggle, nil
	}
	return 0, fmt.Errorf("config: unknown mode %q", s)
}
