package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	defaultConfigPath = "config.json"
	defaultLogLevel   = "info"
)

// startupOptions holds everything the command line can influence.
type startupOptions struct {
	configPath string
	logLevel   string

	// imageRoot replaces the configured image root when overrideRoot is set.
	imageRoot    string
	overrideRoot bool
}

// newRootCmd builds the server command. The optional positional argument
// overrides the configured image root and is persisted before indexing.
func newRootCmd() *cobra.Command {
	opts := startupOptions{}

	cmd := &cobra.Command{
		Use:           "server [image_root_path]",
		Short:         "Serve random images from an indexed directory tree",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.imageRoot = args[0]
				opts.overrideRoot = true
			}

			l, err := setupAppLogger(opts.logLevel, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			fs := afero.NewOsFs()
			cfg, err := loadAppConfig(fs, opts, l)
			if err != nil {
				return err
			}

			app, err := newApplication(fs, cfg, l)
			if err != nil {
				return err
			}

			if err := app.Run(cmd.Context()); err != nil {
				return fmt.Errorf("failed to run server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", defaultConfigPath, "Path to the JSON configuration document")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "Log level (debug, info, warn, error)")

	return cmd
}
