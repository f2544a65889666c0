// Package config resolves viewer settings from defaults, presets, an optional
// CUE or YAML config file, and command-line overrides.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/event"
	"github.com/terassyi/venueview/internal/palette"
)

// Default path constants
const (
	DefaultConfigDir  = "~/.config/venueview"
	DefaultConfigFile = "config.cue"
	DefaultSpeed      = 200 * time.Millisecond
	DefaultLogLevel   = "warn"
	DefaultAuditKeep  = 5
)

// Preset names.
const (
	PresetClassic = "classic"
	PresetCompact = "compact"
)

// Preset is a named bundle of the settings that differ between the two
// viewer variants.
type Preset struct {
	Speed       time.Duration
	ColorPolicy string
	Scheme      string
	Show        string
}

var presets = map[string]Preset{
	// Gradient levels, tinted states, shown on first seat.
	PresetClassic: {
		Speed:       DefaultSpeed,
		ColorPolicy: palette.PolicyGradient,
		Scheme:      palette.SchemeTinted,
		Show:        "lazy",
	},
	// Raw level offsets, gray states, shown on Venue.
	PresetCompact: {
		Speed:       time.Second,
		ColorPolicy: palette.PolicyOffset,
		Scheme:      palette.SchemeGray,
		Show:        "eager",
	},
}

// PresetNames returns the accepted preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var logLevels = []string{"debug", "info", "warn", "error"}

// colorKeys maps config color keys to hold states.
var colorKeys = map[string]event.HoldState{
	"available": event.StateAvailable,
	"held":      event.StateHeld,
	"reserved":  event.StateReserved,
	"expired":   event.StateExpired,
	"invalid":   event.StateInvalid,
}

// Config represents venueview configuration.
type Config struct {
	Speed       time.Duration            `json:"speed" yaml:"speed"`
	Preset      string                   `json:"preset" yaml:"preset"`
	ColorPolicy string                   `json:"colorPolicy" yaml:"colorPolicy"`
	Scheme      string                   `json:"scheme" yaml:"scheme"`
	Show        string                   `json:"show" yaml:"show"`
	LogLevel    string                   `json:"logLevel" yaml:"logLevel"`
	AuditDir    string                   `json:"auditDir,omitempty" yaml:"auditDir,omitempty"`
	AuditKeep   int                      `json:"auditKeep" yaml:"auditKeep"`
	Colors      map[string]palette.Color `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Default returns the classic preset with default logging.
func Default() *Config {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		AuditKeep: DefaultAuditKeep,
	}
	cfg.applyPreset(PresetClassic, presets[PresetClassic])
	return cfg
}

func (c *Config) applyPreset(name string, p Preset) {
	c.Preset = name
	c.Speed = p.Speed
	c.ColorPolicy = p.ColorPolicy
	c.Scheme = p.Scheme
	c.Show = p.Show
}

// Overrides holds optionally-set values from a config file or the command
// line. Nil fields leave the current value unchanged.
type Overrides struct {
	// Speed is the tick interval in milliseconds.
	Speed       *int             `json:"speed,omitempty" yaml:"speed,omitempty"`
	Preset      *string          `json:"preset,omitempty" yaml:"preset,omitempty"`
	ColorPolicy *string          `json:"colorPolicy,omitempty" yaml:"colorPolicy,omitempty"`
	Scheme      *string          `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Show        *string          `json:"show,omitempty" yaml:"show,omitempty"`
	LogLevel    *string          `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	AuditDir    *string          `json:"auditDir,omitempty" yaml:"auditDir,omitempty"`
	AuditKeep   *int             `json:"auditKeep,omitempty" yaml:"auditKeep,omitempty"`
	Colors      map[string][]int `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Apply layers o on top of c. A preset is applied before the individual
// fields so that explicit values win over the preset's.
func (c *Config) Apply(o Overrides) error {
	if o.Preset != nil {
		name := strings.ToLower(*o.Preset)
		p, ok := presets[name]
		if !ok {
			return errors.NewInvalidValueError("preset", strings.Join(PresetNames(), ", "), *o.Preset)
		}
		c.applyPreset(name, p)
	}
	if o.Speed != nil {
		if *o.Speed <= 0 {
			return errors.NewInvalidValueError("speed", "a positive number of milliseconds", itoa(*o.Speed))
		}
		c.Speed = time.Duration(*o.Speed) * time.Millisecond
	}
	if o.ColorPolicy != nil {
		c.ColorPolicy = strings.ToLower(*o.ColorPolicy)
	}
	if o.Scheme != nil {
		c.Scheme = strings.ToLower(*o.Scheme)
	}
	if o.Show != nil {
		c.Show = strings.ToLower(*o.Show)
	}
	if o.LogLevel != nil {
		c.LogLevel = strings.ToLower(*o.LogLevel)
	}
	if o.AuditDir != nil {
		c.AuditDir = *o.AuditDir
	}
	if o.AuditKeep != nil {
		c.AuditKeep = *o.AuditKeep
	}
	for key, rgb := range o.Colors {
		col, err := colorFromInts(key, rgb)
		if err != nil {
			return err
		}
		if c.Colors == nil {
			c.Colors = make(map[string]palette.Color)
		}
		c.Colors[strings.ToLower(key)] = col
	}
	return nil
}

func colorFromInts(key string, rgb []int) (palette.Color, error) {
	if len(rgb) != 3 {
		return palette.Color{}, errors.NewInvalidValueError("colors."+key, "[r, g, b]", itoaSlice(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return palette.Color{}, errors.NewInvalidValueError("colors."+key, "channels in 0..255", itoaSlice(rgb))
		}
	}
	return palette.RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])), nil
}

// Validate checks every name-valued setting.
func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return errors.NewInvalidValueError("speed", "a positive number of milliseconds", c.Speed.String())
	}
	if _, err := palette.PolicyByName(c.ColorPolicy); err != nil {
		return err
	}
	if _, err := palette.SchemeByName(c.Scheme); err != nil {
		return err
	}
	if _, err := driver.ParseShowMode(c.Show); err != nil {
		return err
	}
	if !contains(logLevels, c.LogLevel) {
		return errors.NewInvalidValueError("logLevel", strings.Join(logLevels, ", "), c.LogLevel)
	}
	if c.AuditKeep < 1 {
		return errors.NewInvalidValueError("auditKeep", "one or more sessions", itoa(c.AuditKeep))
	}
	for key := range c.Colors {
		if _, ok := colorKeys[key]; !ok {
			return errors.NewInvalidValueError("colors", "available, held, reserved, expired, invalid", key)
		}
	}
	return nil
}

// Palette builds the immutable palette for the driver.
func (c *Config) Palette() (palette.Palette, error) {
	policy, err := palette.PolicyByName(c.ColorPolicy)
	if err != nil {
		return palette.Palette{}, err
	}
	scheme, err := palette.SchemeByName(c.Scheme)
	if err != nil {
		return palette.Palette{}, err
	}
	for key, col := range c.Colors {
		state, ok := colorKeys[key]
		if !ok {
			return palette.Palette{}, errors.NewInvalidValueError("colors", "available, held, reserved, expired, invalid", key)
		}
		scheme = scheme.Override(state, col)
	}
	return palette.Palette{Policy: policy, Scheme: scheme}, nil
}

// ShowMode returns the driver show mode.
func (c *Config) ShowMode() (driver.ShowMode, error) {
	return driver.ParseShowMode(c.Show)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	return ParseLogLevel(c.LogLevel)
}

// ParseLogLevel converts a string log level to slog.Level.
// Accepted values: "debug", "info", "warn", "error" (case-insensitive).
// Defaults to slog.LevelWarn for unrecognized values.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ExpandHome expands ~ to the user's home directory.
func ExpandHome(p string) (string, error) {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, p[2:]), nil
	}
	if p == "~" {
		return os.UserHomeDir()
	}
	return p, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
