// Package cli wires the badgewire commands. The bare command opens
// the interactive converter; subcommands cover one-shot conversions
// for scripts and pipelines.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atrelio/badgewire/internal/convert"
	"github.com/atrelio/badgewire/internal/infra/config"
	"github.com/atrelio/badgewire/internal/infra/logger"
	"github.com/atrelio/badgewire/internal/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var configPath string

	cmd := &cobra.Command{
		Use:          "badgewire",
		Short:        "badgewire — Wiegand 26-bit badge word converter",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Options: convert.Options{
					Strict:     cfg.Strict,
					WithBinary: cfg.Output.Binary,
				},
				Uppercase: cfg.Output.Uppercase,
				Logger:    logger.L(),
				Debug:     debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging to the badgewire log file")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to badgewire.yaml (optional; defaults to the user config dir)")

	cmd.AddCommand(convertCmd(), inspectCmd(), versionCmd())
	return cmd
}
