package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragula.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
language = "de"
log_level = "debug"

[animation]
duration_ms = 300

[elevation]
width = 6

[theme]
elevation_start = "#40000000"

[back_key]
device = "/dev/input/event3"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.Duration())
	assert.Equal(t, DefaultEasingFactor, cfg.Animation.EasingFactor)
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.SnapDuration())
	assert.Equal(t, int32(6), cfg.Elevation.Width)
	assert.Equal(t, "#40000000", cfg.Theme.ElevationStart)
	assert.Equal(t, "/dev/input/event3", cfg.BackKey.Device)
	assert.Equal(t, DefaultBackKeyCode, cfg.BackKey.Code)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = "), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig(`
language = ""
[animation]
duration_ms = -5
fling_velocity = 2.5
`)
	require.NoError(t, err)

	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultDurationMS, cfg.Animation.DurationMS)
	assert.Equal(t, 2.5, cfg.Animation.FlingVelocity)
}

func TestBuildTheme(t *testing.T) {
	theme, err := ThemeConfig{
		ElevationStart: "#33000000",
		Background:     "#102030",
	}.BuildTheme()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x33), theme.Attributes[AttrElevationStart].A)
	assert.Equal(t, HexToColor(0x102030), theme.Attributes[AttrBackground])
	assert.NotContains(t, theme.Attributes, AttrElevationEnd)
}

func TestBuildThemeInvalidColor(t *testing.T) {
	theme, err := ThemeConfig{ElevationEnd: "blue", Background: "#000000"}.BuildTheme()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.elevation_end")
	assert.Contains(t, theme.Attributes, AttrBackground)
}
