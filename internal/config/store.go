package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Store reads and writes the configuration document on a filesystem.
type Store struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewStore creates a Store backed by fs.
func NewStore(fs afero.Fs, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fs:     fs,
		logger: logger,
	}
}

// Load reads the configuration document at path.
//
// A missing document is not an error: defaults are synthesized, persisted to
// path and returned. A document that exists but cannot be parsed or does not
// validate yields an error wrapping ErrConfigParse.
func (s *Store) Load(path string) (*Config, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrConfigParse, path, err)
	}

	if !exists {
		cfg := Default()
		if err := s.Persist(path, cfg); err != nil {
			return nil, err
		}
		s.logger.Info("configuration file not found, wrote defaults",
			"path", path,
			"host", cfg.Host,
			"port", cfg.Port,
			"image_root", cfg.ImageRoot)
		return cfg, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfigParse, path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// Persist overwrites the document at path with cfg. Any failure wraps
// ErrConfigWrite.
func (s *Store) Persist(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigWrite, path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigWrite, path, err)
		}
	}

	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigType("json")
	v.Set("host", cfg.Host)
	v.Set("port", cfg.Port)
	v.Set("image_root", cfg.ImageRoot)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigWrite, path, err)
	}
	return nil
}
