package fit

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/blead/padfit/pkg/encoding"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Format describes how one output format fills its canvas and encodes it.
type Format struct {
	Name string
	MIME string
	Ext  string

	canvas func(width, height int, cfg *Config, src image.Image) draw.Image
	encode func(w io.Writer, img image.Image, cfg *Config) error
}

func (f Format) String() string {
	return f.Name
}

// PNG keeps the background alpha and is encoded with the compression level.
var PNG = Format{
	Name: "png",
	MIME: encoding.MIMEPNG,
	Ext:  ".png",
	canvas: func(width, height int, cfg *Config, _ image.Image) draw.Image {
		return NewCanvas(width, height, cfg.Background, cfg.TransparentLevel)
	},
	encode: func(w io.Writer, img image.Image, cfg *Config) error {
		return encoding.EncodePNG(w, img, cfg.CompressionLevel)
	},
}

// JPEG has an opaque background; translucent source pixels are flattened onto it.
var JPEG = Format{
	Name: "jpg",
	MIME: encoding.MIMEJPEG,
	Ext:  ".jpg",
	canvas: func(width, height int, cfg *Config, _ image.Image) draw.Image {
		return NewCanvas(width, height, cfg.Background, 0)
	},
	encode: func(w io.Writer, img image.Image, cfg *Config) error {
		b := img.Bounds()
		flat := imaging.Overlay(NewCanvas(b.Dx(), b.Dy(), cfg.Background, 0), img, image.Point{}, 1)
		return encoding.EncodeJPEG(w, flat, cfg.Quality)
	},
}

// GIF reserves the background colour as its single transparent palette entry.
var GIF = Format{
	Name: "gif",
	MIME: encoding.MIMEGIF,
	Ext:  ".gif",
	canvas: func(width, height int, cfg *Config, src image.Image) draw.Image {
		return encoding.NewPaletted(width, height, encoding.KeyPalette(cfg.Background.Opaque(), src))
	},
	encode: func(w io.Writer, img image.Image, _ *Config) error {
		pm, ok := img.(*image.Paletted)
		if !ok {
			return fmt.Errorf("GIF.encode: expected paletted canvas, got=%T", img)
		}
		return encoding.EncodeGIF(w, pm)
	},
}

// Formats lists the supported output formats.
var Formats = []Format{PNG, JPEG, GIF}

// FormatByName looks up a format by name or extension, case-insensitively.
func FormatByName(name string) (Format, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	if name == "jpeg" {
		name = JPEG.Name
	}
	for _, f := range Formats {
		if f.Name == name {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("FormatByName: unknown format, name=%q, %w", name, ErrUnsupportedFormat)
}
