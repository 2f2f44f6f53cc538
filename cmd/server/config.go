package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/randpic-api/internal/config"
	"github.com/spf13/afero"
)

// loadAppConfig loads the configuration document, applies and persists a
// command-line image root override when one was given, and logs the result.
func loadAppConfig(fs afero.Fs, opts startupOptions, logger *slog.Logger) (*config.Config, error) {
	store := config.NewStore(fs, logger)

	cfg, err := store.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.overrideRoot {
		cfg = config.ApplyOverride(cfg, opts.imageRoot)
		if err := store.Persist(opts.configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to persist image root override: %w", err)
		}
		logger.Info("Image root overridden from command line",
			"path", opts.configPath,
			"image_root", cfg.ImageRoot)
	}

	logger.Info("Server configuration loaded",
		"path", opts.configPath,
		"host", cfg.Host,
		"port", cfg.Port,
		"image_root", cfg.ImageRoot)

	return cfg, nil
}
