package internal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	theme := Theme{Attributes: map[string]color.RGBA{
		AttrBackground:   HexToColor(0xFFFFFF),
		AttrElevationEnd: {},
	}}

	assert.Equal(t, HexToColor(0xFFFFFF), theme.ResolveColor(AttrBackground, fallback))
	assert.Equal(t, fallback, theme.ResolveColor(AttrElevationEnd, fallback), "zero counts as unset")
	assert.Equal(t, fallback, theme.ResolveColor(AttrElevationStart, fallback))
	assert.Equal(t, fallback, Theme{}.ResolveColor(AttrBackground, fallback))
}

func TestHexToColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, HexToColor(0x123456))
	assert.Equal(t, color.RGBA{A: 0xFF}, HexToColor(0))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#123456", want: color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
		{in: "123456", want: color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
		{in: "#80123456", want: color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80}},
		{in: "#00000000", want: color.RGBA{}},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetTheme(t *testing.T) {
	previous := GetTheme()
	t.Cleanup(func() { SetTheme(previous) })

	theme := Theme{Attributes: map[string]color.RGBA{AttrBackground: HexToColor(0x010203)}}
	SetTheme(theme)
	assert.Equal(t, theme, GetTheme())
}
