// Package main implements the entry point for the random image server,
// which indexes an image directory once at startup and serves a random
// image matching a filter token on each request.
package main

import (
	"context"
	"log/slog"
	"os"
)

// main is the entry point for the server. Any startup or bind failure is
// logged and ends the process with a non-zero status.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
