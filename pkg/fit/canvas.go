package fit

import (
	"image"

	"github.com/blead/padfit/pkg/encoding"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// NewCanvas allocates a width x height canvas filled with bg at the given
// transparency level.
func NewCanvas(width, height int, bg Color, level int) *image.NRGBA {
	return imaging.New(width, height, bg.NRGBA(level))
}

// CenterOffset is the top-left position of a src sized image centred on a
// canvas sized rectangle. Each half is truncated before subtracting.
func CenterOffset(canvas, src image.Point) image.Point {
	return image.Pt(canvas.X/2-src.X/2, canvas.Y/2-src.Y/2)
}

// Composite overwrites the centre of canvas with src, pixel for pixel.
// Alpha in src replaces the background rather than blending with it.
// On a paletted canvas index 0 is the transparent key.
func Composite(canvas draw.Image, src image.Image) draw.Image {
	cb, sb := canvas.Bounds(), src.Bounds()
	at := cb.Min.Add(CenterOffset(cb.Size(), sb.Size()))

	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(cb)

	switch dst := canvas.(type) {
	case *image.Paletted:
		encoding.DrawKeyed(dst, at, src)
		return dst
	case *image.NRGBA:
		// draw.Src premultiplies, which drops the colour of transparent pixels
		// and rounds translucent ones.
		if s, ok := src.(*image.NRGBA); ok {
			n := 4 * r.Dx()
			for y := r.Min.Y; y < r.Max.Y; y++ {
				i := dst.PixOffset(r.Min.X, y)
				j := s.PixOffset(sb.Min.X+r.Min.X-at.X, sb.Min.Y+y-at.Y)
				copy(dst.Pix[i:i+n], s.Pix[j:j+n])
			}
			return dst
		}
	}

	draw.Draw(canvas, r, src, sb.Min.Add(r.Min.Sub(at)), draw.Src)
	return canvas
}
