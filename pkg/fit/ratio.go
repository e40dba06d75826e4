package fit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AspectRatio is the width:height proportion of the output canvas.
type AspectRatio struct {
	Width  float64
	Height float64
}

// Square is the default 1:1 ratio.
var Square = AspectRatio{Width: 1, Height: 1}

// Ratio returns Width/Height.
func (ar AspectRatio) Ratio() float64 {
	return ar.Width / ar.Height
}

func (ar AspectRatio) String() string {
	return strconv.FormatFloat(ar.Width, 'f', -1, 64) + ":" + strconv.FormatFloat(ar.Height, 'f', -1, 64)
}

// Validate reports whether both components are positive finite numbers.
func (ar AspectRatio) Validate() error {
	for _, v := range []float64{ar.Width, ar.Height} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("AspectRatio: components must be positive, ratio=%s, %w", ar, ErrInvalidArgument)
		}
	}
	return nil
}

// ParseAspectRatio parses "W:H" or "WxH", the x in either case.
func ParseAspectRatio(s string) (AspectRatio, error) {
	lower := strings.ToLower(s)
	if strings.Count(lower, ":")+strings.Count(lower, "x") != 1 {
		return AspectRatio{}, fmt.Errorf("ParseAspectRatio: expected W:H, got=%q, %w", s, ErrInvalidArgument)
	}
	parts := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ':' || r == 'x'
	})
	if len(parts) != 2 {
		return AspectRatio{}, fmt.Errorf("ParseAspectRatio: expected W:H, got=%q, %w", s, ErrInvalidArgument)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("ParseAspectRatio: width=%q, %w", parts[0], ErrInvalidArgument)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("ParseAspectRatio: height=%q, %w", parts[1], ErrInvalidArgument)
	}

	ar := AspectRatio{Width: w, Height: h}
	return ar, ar.Validate()
}

// MaxCanvasPixels bounds the area of a padded canvas.
const MaxCanvasPixels = 1 << 28

// FinalSize returns the smallest canvas of ratio ar that holds a width x height
// source at 1:1 scale. Fractional sides are truncated, but never below the
// source side.
func FinalSize(width, height int, ar AspectRatio) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("FinalSize: source must be non-empty, width=%d, height=%d, %w", width, height, ErrInvalidArgument)
	}
	if err := ar.Validate(); err != nil {
		return 0, 0, err
	}

	imageRatio := float64(width) / float64(height)
	target := ar.Ratio()

	fw, fh := float64(width), float64(height)
	switch {
	case imageRatio > target:
		fh = math.Max(math.Trunc(fw*ar.Height/ar.Width), fh)
	case imageRatio < target:
		fw = math.Max(math.Trunc(fh*ar.Width/ar.Height), fw)
	}
	// checked as floats, int conversion of an out of range value is undefined
	if fw > math.MaxInt32 || fh > math.MaxInt32 || fw*fh > MaxCanvasPixels {
		return 0, 0, fmt.Errorf("FinalSize: canvas too large, width=%.0f, height=%.0f, ratio=%s, %w", fw, fh, ar, ErrInvalidArgument)
	}
	return int(fw), int(fh), nil
}
