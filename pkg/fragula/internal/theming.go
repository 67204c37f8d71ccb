package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme attribute names the navigation host resolves.
const (
	AttrElevationStart = "elevation_start"
	AttrElevationEnd   = "elevation_end"
	AttrBackground     = "background"
)

// Theme holds the colors the host draws with, keyed by attribute name.
// An attribute that is missing or fully zero counts as unset.
type Theme struct {
	Attributes map[string]color.RGBA
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ResolveColor returns the color set for attr, or fallback if attr is unset.
func (t Theme) ResolveColor(attr string, fallback color.RGBA) color.RGBA {
	c, ok := t.Attributes[attr]
	if !ok || c == (color.RGBA{}) {
		return fallback
	}
	return c
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB". The leading '#' is optional.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	c := HexToColor(uint32(v))
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
