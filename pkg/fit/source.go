package fit

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/blead/padfit/pkg/encoding"
)

// Source is a decoded source image. It is read once and never modified.
type Source struct {
	Path  string
	Data  []byte
	MIME  string
	Image image.Image
}

// LoadSource reads and decodes the image at path.
func LoadSource(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("LoadSource: %w", ErrMissingInput)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("LoadSource: src=%s, %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadSource: src read error, src=%s, %v: %w", path, err, ErrIO)
	}

	src, err := decodeSource(data)
	if err != nil {
		return nil, fmt.Errorf("LoadSource: src=%s, %w", path, err)
	}
	src.Path = path
	return src, nil
}

// NewSource decodes an in-memory image. A nil buffer is a missing input; an
// empty one is sniffed like any other content.
func NewSource(data []byte) (*Source, error) {
	if data == nil {
		return nil, fmt.Errorf("NewSource: %w", ErrMissingInput)
	}
	return decodeSource(data)
}

func decodeSource(data []byte) (*Source, error) {
	img, mime, err := encoding.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Source{Data: data, MIME: mime, Image: img}, nil
}

// Width of the source in pixels.
func (s *Source) Width() int {
	return s.Image.Bounds().Dx()
}

// Height of the source in pixels.
func (s *Source) Height() int {
	return s.Image.Bounds().Dy()
}
