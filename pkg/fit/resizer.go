package fit

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/blead/padfit/pkg/encoding"
)

const defaultOutputDir = "Resized Images"

// Resizer pads a source image out to an aspect ratio and encodes the result.
// It is immutable once built and safe for concurrent use.
type Resizer struct {
	config Config
	source *Source
}

// NewResizer loads config.SourcePath and freezes a copy of config.
// If the configuration is nil, use DefaultConfig.
func NewResizer(config *Config) (*Resizer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	src, err := LoadSource(config.SourcePath)
	if err != nil {
		return nil, err
	}
	return NewResizerFromSource(src, config)
}

// NewResizerFromSource builds a resizer around an already decoded source.
// config.SourcePath is ignored.
func NewResizerFromSource(src *Source, config *Config) (*Resizer, error) {
	if src == nil || src.Image == nil {
		return nil, fmt.Errorf("NewResizerFromSource: %w", ErrMissingInput)
	}
	if config == nil {
		config = DefaultConfig()
	}

	frozen := config.normalize()
	frozen.SourcePath = src.Path
	if err := frozen.AspectRatio.Validate(); err != nil {
		return nil, err
	}
	return &Resizer{config: frozen, source: src}, nil
}

// With returns a resizer sharing the decoded source with a new configuration.
func (r *Resizer) With(config *Config) (*Resizer, error) {
	return NewResizerFromSource(r.source, config)
}

// Config returns a copy of the frozen configuration.
func (r *Resizer) Config() Config {
	return r.config
}

// Source returns the decoded source image.
func (r *Resizer) Source() *Source {
	return r.source
}

// CanvasSize returns the padded output dimensions.
func (r *Resizer) CanvasSize() (int, int, error) {
	return FinalSize(r.source.Width(), r.source.Height(), r.config.AspectRatio)
}

// Render builds the padded canvas for f without encoding it.
func (r *Resizer) Render(f Format) (image.Image, error) {
	width, height, err := r.CanvasSize()
	if err != nil {
		return nil, err
	}
	canvas := f.canvas(width, height, &r.config, r.source.Image)
	return Composite(canvas, r.source.Image), nil
}

// Encode renders and writes f to w.
func (r *Resizer) Encode(w io.Writer, f Format) error {
	img, err := r.Render(f)
	if err != nil {
		return err
	}
	if err := f.encode(w, img, &r.config); err != nil {
		return fmt.Errorf("Encode: format=%s, %w", f, err)
	}
	return nil
}

// Bytes returns the encoded image.
func (r *Resizer) Bytes(f Format) ([]byte, error) {
	var output bytes.Buffer
	if err := r.Encode(&output, f); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// DataURI returns the encoded image as an inline data URI.
func (r *Resizer) DataURI(f Format) (string, error) {
	b, err := r.Bytes(f)
	if err != nil {
		return "", err
	}
	return encoding.DataURI(f.MIME, b), nil
}

// OutputPath resolves where Save writes f when no explicit path is given.
func (r *Resizer) OutputPath(f Format) (string, error) {
	if r.config.OutputPath != "" {
		return r.config.OutputPath + f.Ext, nil
	}
	if r.source.Path == "" {
		return "", fmt.Errorf("OutputPath: no output path and no source path, %w", ErrMissingInput)
	}
	name := filepath.Base(r.source.Path)
	name = name[:len(name)-len(filepath.Ext(name))]
	return filepath.Join(filepath.Dir(r.source.Path), defaultOutputDir, name+f.Ext), nil
}

// Save encodes f and writes it to path, or to OutputPath when path is empty.
// Missing directories are created. It returns the path written.
func (r *Resizer) Save(f Format, path string) (string, error) {
	dest := path
	if dest == "" {
		var err error
		dest, err = r.OutputPath(f)
		if err != nil {
			return "", err
		}
	}

	data, err := r.Bytes(f)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", fmt.Errorf("Save: unable to create directory, dir=%s, %v: %w", dir, err, ErrIO)
	}

	log.Printf("[DEBUG] Save: format=%s, dest=%s, bytes=%d\n", f, dest, len(data))
	if err := writeFile(dest, data); err != nil {
		return "", fmt.Errorf("Save: dest write error, dest=%s, %v: %w", dest, err, ErrIO)
	}
	return dest, nil
}

// writeFile writes through a temporary file in the same directory so a failed
// write never leaves a truncated dest behind.
func writeFile(dest string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
