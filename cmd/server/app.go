package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/randpic-api/internal/config"
	"github.com/phrazzld/randpic-api/internal/gallery"
	"github.com/phrazzld/randpic-api/internal/selector"
	"github.com/spf13/afero"
)

// application holds the dependencies shared by every request. None of them
// change after newApplication returns.
type application struct {
	config *config.Config
	logger *slog.Logger

	index  *gallery.Index
	picker *selector.Picker
}

// newApplication builds the image index for cfg.ImageRoot. A missing root is
// bootstrapped and yields an empty index; an unreadable one is an error.
func newApplication(fs afero.Fs, cfg *config.Config, logger *slog.Logger) (*application, error) {
	idx, err := gallery.Load(fs, cfg.ImageRoot, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build image index: %w", err)
	}
	logger.Info("Found images",
		"count", idx.Len(),
		"image_root", idx.Root())

	return &application{
		config: cfg,
		logger: logger,
		index:  idx,
		picker: selector.NewPicker(),
	}, nil
}

// Run binds the configured address and serves until ctx is canceled or the
// process receives SIGINT or SIGTERM.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
