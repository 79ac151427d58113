package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when none is given
const DefaultFilename = "framepad.yaml"

// Loader loads configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads the named file on top of the defaults.
// A missing file is not an error and yields the defaults.
func (l *Loader) Load(name string) (*Config, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, name), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// LoadFile loads a config file from an arbitrary path
func LoadFile(path string) (*Config, error) {
	return NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Recorder.TPS <= 0 {
		return fmt.Errorf("recorder.tps must be positive, got %d", c.Recorder.TPS)
	}
	if c.Recorder.Scale <= 0 {
		return fmt.Errorf("recorder.scale must be positive, got %d", c.Recorder.Scale)
	}
	if c.Recorder.ScreenWidth <= 0 || c.Recorder.ScreenHeight <= 0 {
		return fmt.Errorf("recorder screen size must be positive, got %dx%d", c.Recorder.ScreenWidth, c.Recorder.ScreenHeight)
	}
	return nil
}
