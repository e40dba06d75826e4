package fit

import (
	"errors"
	"math"
	"testing"
)

func TestFinalSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		ar            AspectRatio
		wantW, wantH  int
	}{
		{"wide source square", 100, 50, Square, 100, 100},
		{"tall source square", 50, 100, Square, 100, 100},
		{"identity", 100, 100, Square, 100, 100},
		{"identity 16:9", 1920, 1080, AspectRatio{16, 9}, 1920, 1080},
		{"square to 16:9 truncates", 100, 100, AspectRatio{16, 9}, 177, 100},
		{"square to 4:3", 100, 100, AspectRatio{4, 3}, 133, 100},
		{"wide to 1:2", 300, 100, AspectRatio{1, 2}, 300, 600},
		{"fractional ratio", 10, 10, AspectRatio{1.5, 1}, 15, 10},
		{"one pixel", 1, 1, AspectRatio{3, 1}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := FinalSize(tt.width, tt.height, tt.ar)
			if err != nil {
				t.Fatalf("FinalSize() error = %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FinalSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFinalSizeContainsSource(t *testing.T) {
	ratios := []AspectRatio{{1, 1}, {16, 9}, {9, 16}, {4, 3}, {3, 7}, {2.35, 1}, {1, 3}}
	for _, ar := range ratios {
		for width := 1; width <= 64; width += 7 {
			for height := 1; height <= 64; height += 5 {
				w, h, err := FinalSize(width, height, ar)
				if err != nil {
					t.Fatalf("FinalSize(%d, %d, %s) error = %v", width, height, ar, err)
				}
				if w < width || h < height {
					t.Errorf("FinalSize(%d, %d, %s) = %dx%d, smaller than source", width, height, ar, w, h)
				}
				// one side is kept, the other is within a pixel of the exact ratio
				switch {
				case w == width && h == height:
				case w == width:
					if d := math.Abs(float64(h) - float64(width)/ar.Ratio()); d >= 1 {
						t.Errorf("FinalSize(%d, %d, %s) = %dx%d, height off by %f", width, height, ar, w, h, d)
					}
				case h == height:
					if d := math.Abs(float64(w) - float64(height)*ar.Ratio()); d >= 1 {
						t.Errorf("FinalSize(%d, %d, %s) = %dx%d, width off by %f", width, height, ar, w, h, d)
					}
				default:
					t.Errorf("FinalSize(%d, %d, %s) = %dx%d, both sides changed", width, height, ar, w, h)
				}
			}
		}
	}
}

func TestFinalSizeInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		ar            AspectRatio
	}{
		{"zero source height", 100, 0, Square},
		{"zero source width", 0, 100, Square},
		{"zero ratio height", 100, 100, AspectRatio{1, 0}},
		{"zero ratio width", 100, 100, AspectRatio{0, 1}},
		{"negative ratio", 100, 100, AspectRatio{-1, 1}},
		{"nan ratio", 100, 100, AspectRatio{math.NaN(), 1}},
		{"inf ratio", 100, 100, AspectRatio{math.Inf(1), 1}},
		{"overflowing width", 100, 100, AspectRatio{1e300, 1}},
		{"overflowing height", 100, 100, AspectRatio{1, 1e300}},
		{"over pixel cap", 100, 100, AspectRatio{1e8, 1}},
		{"over pixel cap tall", 20000, 20000, AspectRatio{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FinalSize(tt.width, tt.height, tt.ar)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("FinalSize() error = %v, want %v", err, ErrInvalidArgument)
			}
		})
	}
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    AspectRatio
		wantErr bool
	}{
		{"16:9", AspectRatio{16, 9}, false},
		{"4x3", AspectRatio{4, 3}, false},
		{"16X9", AspectRatio{16, 9}, false},
		{"1x2:3", AspectRatio{}, true},
		{"1x2x3", AspectRatio{}, true},
		{" 2.35 : 1 ", AspectRatio{2.35, 1}, false},
		{"1:0", AspectRatio{}, true},
		{"-1:2", AspectRatio{}, true},
		{"a:b", AspectRatio{}, true},
		{"1:2:3", AspectRatio{}, true},
		{"square", AspectRatio{}, true},
	}

	for _, tt := range tests {
		got, err := ParseAspectRatio(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseAspectRatio(%q) error = %v, want %v", tt.in, err, ErrInvalidArgument)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAspectRatio(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAspectRatio(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
