package encoding

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// EncodeJPEG writes img as JPEG. Alpha is dropped by the encoder, so callers
// flatten translucent pixels first.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
}
