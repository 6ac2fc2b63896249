package config

import (
	"fmt"

	"github.com/dshills/splitstring/internal/config/loader"
)

// Sources lists where a Store reads its settings from. Layers apply in the
// order defaults, file, environment, flags.
type Sources struct {
	// Path is the config file; empty for none. A missing file is not an error.
	Path string

	// Env enables the SPLITSTRING_* environment variables.
	Env bool

	// Flags is the command line layer, a document like the file's.
	Flags map[string]any

	// FS reads the config file; nil means the OS file system.
	FS loader.FileSystem

	// EnvLoader overrides the environment source.
	EnvLoader loader.Loader
}

// LoadSources reads and layers every source, then loads the result.
// The sources are kept for Reload.
func (s *Store) LoadSources(src Sources) error {
	doc, err := src.document()
	if err != nil {
		return err
	}
	if err := s.Load(doc); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s.mu.Lock()
	s.sources = src
	s.mu.Unlock()
	return nil
}

// Reload rereads the sources of the last successful LoadSources.
func (s *Store) Reload() error {
	s.mu.RLock()
	src := s.sources
	s.mu.RUnlock()
	return s.LoadSources(src)
}

// Path returns the config file path in use.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sources.Path
}

func (src Sources) document() (map[string]any, error) {
	var file, env map[string]any

	if src.Path != "" {
		l, err := loader.ForPath(src.FS, src.Path)
		if err != nil {
			return nil, err
		}
		if file, err = l.Load(); err != nil {
			return nil, err
		}
	}

	if src.Env {
		l := src.EnvLoader
		if l == nil {
			l = loader.NewEnvLoader()
		}
		var err error
		if env, err = l.Load(); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
	}

	return loader.Merge(file, env, src.Flags), nil
}
