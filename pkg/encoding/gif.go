package encoding

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/soniakeys/quant/median"
)

const maxPaletteSize = 256

// KeyPalette builds a GIF palette whose first entry is the transparent key.
// The key keeps the RGB of c with zero alpha, which the gif encoder picks up as
// the transparent index while still writing c into the colour table.
// The remaining entries are median-cut from src and always opaque.
func KeyPalette(c color.RGBA, src image.Image) color.Palette {
	key := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0}

	p := make(color.Palette, 0, maxPaletteSize)
	p = append(p, key)
	if src == nil || src.Bounds().Empty() {
		return p
	}

	q := median.Quantizer(maxPaletteSize - 1)
	quantized := q.Quantize(make(color.Palette, 0, maxPaletteSize-1), src)
	for _, qc := range quantized {
		if len(p) == maxPaletteSize {
			break
		}
		// only the key may be transparent
		opaque := color.RGBAModel.Convert(qc).(color.RGBA)
		opaque.A = 0xff
		p = append(p, opaque)
	}
	return p
}

// KeyIndex is the palette index reserved for the transparent key.
const KeyIndex = 0

// NewPaletted allocates a paletted canvas filled with the transparent key.
func NewPaletted(width, height int, p color.Palette) *image.Paletted {
	// zero value of Pix is KeyIndex
	return image.NewPaletted(image.Rect(0, 0, width, height), p)
}

// EncodeGIF writes a single frame GIF using the palette of img as is.
func EncodeGIF(w io.Writer, img *image.Paletted) error {
	return gif.Encode(w, img, &gif.Options{NumColors: len(img.Palette)})
}

// DrawKeyed copies src onto dst with its top-left corner at pt. Pixels that are
// at least half transparent take KeyIndex, the rest their nearest opaque
// palette entry. No dithering is applied.
func DrawKeyed(dst *image.Paletted, pt image.Point, src image.Image) {
	var opaque color.Palette
	if len(dst.Palette) > KeyIndex+1 {
		opaque = dst.Palette[KeyIndex+1:]
	}
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}.Intersect(dst.Bounds())

	cache := make(map[color.RGBA]uint8)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(sb.Min.X+x-pt.X, sb.Min.Y+y-pt.Y)).(color.RGBA)
			if c.A < 0x80 || len(opaque) == 0 {
				dst.SetColorIndex(x, y, KeyIndex)
				continue
			}
			idx, ok := cache[c]
			if !ok {
				idx = uint8(opaque.Index(c) + KeyIndex + 1)
				cache[c] = idx
			}
			dst.SetColorIndex(x, y, idx)
		}
	}
}
