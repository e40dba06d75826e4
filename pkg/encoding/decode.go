package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedFormat is returned when sniffed content is not an accepted image type.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// MIME types accepted as source images.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
)

var accept = map[string]struct{}{
	MIMEPNG:  {},
	MIMEJPEG: {},
	MIMEGIF:  {},
}

// Sniff detects the MIME type of raw bytes from their content.
func Sniff(raw []byte) (string, error) {
	mime := mimetype.Detect(raw)
	for m := mime; m != nil; m = m.Parent() {
		if _, ok := accept[m.String()]; ok {
			return m.String(), nil
		}
	}
	return "", fmt.Errorf("Sniff: detected=%s, %w", mime.String(), ErrUnsupportedFormat)
}

// Decode sniffs and decodes raw image bytes. Only the first frame of a GIF is read.
func Decode(raw []byte) (image.Image, string, error) {
	mime, err := Sniff(raw)
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("Decode: mime=%s, %w", mime, err)
	}
	return img, mime, nil
}
