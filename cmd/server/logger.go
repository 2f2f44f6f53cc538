package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/randpic-api/internal/platform/logger"
)

// setupAppLogger configures the process-wide JSON logger.
func setupAppLogger(level string, out io.Writer) (*slog.Logger, error) {
	l, err := logger.Setup(logger.LoggerConfig{
		Level:  level,
		Output: out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}
