package internal

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration of a navigation host. Every key is optional.
type Config struct {
	Language  string          `toml:"language"`
	LogLevel  string          `toml:"log_level"`
	Animation AnimationConfig `toml:"animation"`
	Elevation ElevationConfig `toml:"elevation"`
	Theme     ThemeConfig     `toml:"theme"`
	BackKey   BackKeyConfig   `toml:"back_key"`
}

type AnimationConfig struct {
	DurationMS     int     `toml:"duration_ms"`
	EasingFactor   float64 `toml:"easing_factor"`
	SnapDurationMS int     `toml:"snap_duration_ms"`
	FlingVelocity  float64 `toml:"fling_velocity"` // pages per second
}

type ElevationConfig struct {
	Width int32 `toml:"width"`
}

// ThemeConfig colors are "#RRGGBB" or "#AARRGGBB" strings.
type ThemeConfig struct {
	ElevationStart string `toml:"elevation_start"`
	ElevationEnd   string `toml:"elevation_end"`
	Background     string `toml:"background"`
}

// BackKeyConfig names the evdev device and key code that act as a back button.
// An empty device disables the listener.
type BackKeyConfig struct {
	Device string `toml:"device"`
	Code   int    `toml:"code"`
}

// Default configuration values.
const (
	DefaultDurationMS     = 500
	DefaultEasingFactor   = 1.78
	DefaultSnapDurationMS = 250
	DefaultFlingVelocity  = 0.8
	DefaultElevationWidth = 3
	DefaultLanguage       = "en"
	DefaultBackKeyCode    = 158 // KEY_BACK
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Language: DefaultLanguage,
		LogLevel: "info",
		Animation: AnimationConfig{
			DurationMS:     DefaultDurationMS,
			EasingFactor:   DefaultEasingFactor,
			SnapDurationMS: DefaultSnapDurationMS,
			FlingVelocity:  DefaultFlingVelocity,
		},
		Elevation: ElevationConfig{Width: DefaultElevationWidth},
		BackKey:   BackKeyConfig{Code: DefaultBackKeyCode},
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// ParseConfig decodes TOML data over the defaults.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Animation.DurationMS <= 0 {
		c.Animation.DurationMS = DefaultDurationMS
	}
	if c.Animation.EasingFactor <= 0 {
		c.Animation.EasingFactor = DefaultEasingFactor
	}
	if c.Animation.SnapDurationMS <= 0 {
		c.Animation.SnapDurationMS = DefaultSnapDurationMS
	}
	if c.Animation.FlingVelocity <= 0 {
		c.Animation.FlingVelocity = DefaultFlingVelocity
	}
	if c.Elevation.Width <= 0 {
		c.Elevation.Width = DefaultElevationWidth
	}
	if c.BackKey.Code <= 0 {
		c.BackKey.Code = DefaultBackKeyCode
	}
}

// Duration returns the programmatic transition duration.
func (a AnimationConfig) Duration() time.Duration {
	return time.Duration(a.DurationMS) * time.Millisecond
}

// SnapDuration returns the duration of the settle animation after a drag.
func (a AnimationConfig) SnapDuration() time.Duration {
	return time.Duration(a.SnapDurationMS) * time.Millisecond
}

// BuildTheme turns the configured color strings into a Theme.
// Unset or invalid colors are left out so ResolveColor falls back.
func (t ThemeConfig) BuildTheme() (Theme, error) {
	theme := Theme{Attributes: make(map[string]color.RGBA)}

	var errs []error
	for attr, raw := range map[string]string{
		AttrElevationStart: t.ElevationStart,
		AttrElevationEnd:   t.ElevationEnd,
		AttrBackground:     t.Background,
	} {
		if raw == "" {
			continue
		}
		c, err := ParseColor(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", attr, err))
			continue
		}
		theme.Attributes[attr] = c
	}

	return theme, errors.Join(errs...)
}
