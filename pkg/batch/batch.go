package batch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blead/padfit/pkg/concurrency"
	"github.com/blead/padfit/pkg/fit"
)

// BatcherConfig is the configuration for the batcher.
type BatcherConfig struct {
	SrcPath     string
	DestPath    string
	Formats     []fit.Format
	Fit         *fit.Config
	Concurrency int
}

// DefaultBatcherConfig generates a default configuration.
func DefaultBatcherConfig() *BatcherConfig {
	return &BatcherConfig{
		SrcPath:     "",
		DestPath:    "",
		Formats:     []fit.Format{fit.PNG},
		Fit:         fit.DefaultConfig(),
		Concurrency: 5,
	}
}

// Batcher pads every image under a directory tree.
type Batcher struct {
	config *BatcherConfig
}

// NewBatcher creates a new batcher with the supplied configuration.
// If the configuration is nil, use DefaultBatcherConfig.
func NewBatcher(config *BatcherConfig) (*Batcher, error) {
	def := DefaultBatcherConfig()
	if config == nil {
		config = def
	}

	if config.SrcPath == "" || config.SrcPath == "." {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		config.SrcPath = wd
	}
	config.SrcPath = filepath.Clean(config.SrcPath)
	if config.DestPath == "" {
		return nil, fmt.Errorf("NewBatcher: dest path not provided, %w", fit.ErrMissingInput)
	}
	config.DestPath = filepath.Clean(config.DestPath)

	if len(config.Formats) == 0 {
		config.Formats = def.Formats
	}
	if config.Fit == nil {
		config.Fit = def.Fit
	}
	if err := config.Fit.AspectRatio.Validate(); err != nil {
		return nil, err
	}
	if config.Concurrency == 0 {
		config.Concurrency = def.Concurrency
	}

	return &Batcher{config: config}, nil
}

// visited is the outcome of one entry: child entries of a directory, or the
// files written for an image.
type visited struct {
	children []string
	written  []string
}

// entry is a path relative to SrcPath. A nil Output means not yet visited.
type entry = concurrency.Item[string, *visited]

// Run walks SrcPath and writes each configured format under DestPath,
// mirroring the source tree. Files that are not images are skipped.
// It returns the written paths, sorted.
func (batcher *Batcher) Run() ([]string, error) {
	log.Printf("[INFO] Fitting images, src=%s, dest=%s\n", batcher.config.SrcPath, batcher.config.DestPath)

	// written is only touched by the dispatcher goroutine
	var written []string
	err := concurrency.Dispatcher(
		func(i *entry) ([]*entry, error) {
			if i.Output == nil {
				return []*entry{i}, nil
			}
			written = append(written, i.Output.written...)
			var output []*entry
			for _, child := range i.Output.children {
				output = append(output, &entry{Data: child})
			}
			return output, nil
		},
		batcher.visit,
		[]*entry{{Data: "."}},
		batcher.config.Concurrency,
	)

	sort.Strings(written)
	return written, err
}

func (batcher *Batcher) visit(i *entry) (*visited, error) {
	src := filepath.Join(batcher.config.SrcPath, i.Data)
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("visit: src stat error, src=%s, %w", src, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(src)
		if err != nil {
			return nil, fmt.Errorf("visit: src read dir error, src=%s, %w", src, err)
		}
		v := &visited{}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}
			v.children = append(v.children, filepath.Join(i.Data, e.Name()))
		}
		return v, nil
	}

	written, err := batcher.fitFile(i.Data)
	if errors.Is(err, fit.ErrUnsupportedFormat) {
		log.Printf("[WARN] visit: skipping non-image file, src=%s\n", src)
		return &visited{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &visited{written: written}, nil
}

func (batcher *Batcher) fitFile(rel string) ([]string, error) {
	src, err := fit.LoadSource(filepath.Join(batcher.config.SrcPath, rel))
	if err != nil {
		return nil, err
	}
	resizer, err := fit.NewResizerFromSource(src, batcher.config.Fit)
	if err != nil {
		return nil, err
	}

	base := filepath.Join(batcher.config.DestPath, strings.TrimSuffix(rel, filepath.Ext(rel)))
	var written []string
	for _, f := range batcher.config.Formats {
		dest, err := resizer.Save(f, base+f.Ext)
		if err != nil {
			return nil, err
		}
		written = append(written, dest)
	}
	log.Printf("[DEBUG] fitFile: src=%s, formats=%d\n", src.Path, len(written))
	return written, nil
}
