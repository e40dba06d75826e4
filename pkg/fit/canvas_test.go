package fit

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		canvas, src, want image.Point
	}{
		{image.Pt(100, 100), image.Pt(100, 50), image.Pt(0, 25)},
		{image.Pt(100, 100), image.Pt(50, 100), image.Pt(25, 0)},
		{image.Pt(100, 100), image.Pt(100, 100), image.Pt(0, 0)},
		{image.Pt(100, 100), image.Pt(51, 51), image.Pt(25, 25)},
		{image.Pt(101, 101), image.Pt(50, 50), image.Pt(25, 25)},
	}
	for _, tt := range tests {
		if got := CenterOffset(tt.canvas, tt.src); got != tt.want {
			t.Errorf("CenterOffset(%v, %v) = %v, want %v", tt.canvas, tt.src, got, tt.want)
		}
	}
}

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(3, 2, Color{255, 0, 0}, 127)
	if b := canvas.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("NewCanvas() bounds = %v, want 3x2", b)
	}
	want := color.NRGBA{R: 255, A: 0}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := canvas.NRGBAAt(x, y); got != want {
				t.Errorf("NRGBAAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeWide(t *testing.T) {
	bg := color.NRGBA{R: 255, A: 255}
	src := gradient(100, 50)
	canvas := NewCanvas(100, 100, Color{255, 0, 0}, 0)

	Composite(canvas, src)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			got := canvas.NRGBAAt(x, y)
			want := bg
			if y >= 25 && y < 75 {
				want = src.NRGBAAt(x, y-25)
			}
			if got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeTall(t *testing.T) {
	bg := color.NRGBA{R: 255, A: 255}
	src := gradient(50, 100)
	canvas := NewCanvas(100, 100, Color{255, 0, 0}, 0)

	Composite(canvas, src)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			got := canvas.NRGBAAt(x, y)
			want := bg
			if x >= 25 && x < 75 {
				want = src.NRGBAAt(x-25, y)
			}
			if got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeIdentity(t *testing.T) {
	src := gradient(40, 30)
	// translucent and transparent pixels are copied, not blended
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	canvas := NewCanvas(40, 30, Color{0, 0, 255}, 0)
	Composite(canvas, src)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if got, want := canvas.NRGBAAt(x, y), src.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeSubImage(t *testing.T) {
	full := NewCanvas(10, 10, Color{0, 0, 0}, 0)
	canvas := full.SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)
	src := solid(2, 2, color.NRGBA{G: 255, A: 255})

	Composite(canvas, src)

	green := color.NRGBA{G: 255, A: 255}
	black := color.NRGBA{A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := black
			if x >= 3 && x < 5 && y >= 3 && y < 5 {
				want = green
			}
			if got := full.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeRGBA(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := solid(2, 4, color.NRGBA{R: 255, A: 255})

	Composite(canvas, src)

	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA{}
			if x == 1 || x == 2 {
				want = red
			}
			if got := canvas.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeInPlace(t *testing.T) {
	canvas := NewCanvas(40, 40, White, 0)
	src := gradient(40, 20)

	if got := Composite(canvas, src); got != draw.Image(canvas) {
		t.Errorf("Composite() returned a different image")
	}
	allocs := testing.AllocsPerRun(10, func() {
		Composite(canvas, src)
	})
	if allocs != 0 {
		t.Errorf("Composite() allocs = %v, want 0", allocs)
	}
}
