package fit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// MaxTransparentLevel is fully transparent, 0 is opaque.
const MaxTransparentLevel = 127

// Color is an opaque RGB background colour.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// White is the default background.
var White = Color{R: 255, G: 255, B: 255}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA applies a transparency level in [0,127] as straight alpha.
func (c Color) NRGBA(level int) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: levelToAlpha(level)}
}

// Opaque is the colour with full alpha.
func (c Color) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func levelToAlpha(level int) uint8 {
	level = clamp(level, 0, MaxTransparentLevel)
	return uint8(255 - math.Round(float64(level)*255/MaxTransparentLevel))
}

// ParseColor accepts "#rrggbb", "rrggbb", "#rgb" or "r,g,b".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return parseRGBList(s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("ParseColor: invalid hex colour, color=%q, %w", s, ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("ParseColor: invalid hex colour, color=%q, %w", s, ErrInvalidArgument)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func parseRGBList(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("parseRGBList: expected r,g,b, color=%q, %w", s, ErrInvalidArgument)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parseRGBList: component out of range, color=%q, %w", s, ErrInvalidArgument)
		}
		rgb[i] = uint8(v)
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
