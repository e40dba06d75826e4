package encoding

import (
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// pngCompression maps a zlib style level [0,9] onto the png encoder presets.
func pngCompression(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// EncodePNG writes img as PNG, keeping its alpha channel.
func EncodePNG(w io.Writer, img image.Image, level int) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(pngCompression(level)))
}
