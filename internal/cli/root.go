// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cli implements the kosenfes command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"kosenfes/internal/config"
	"kosenfes/internal/logging"
)

// RootOptions carries state shared by every subcommand. Config is filled
// in by the root command before any subcommand runs.
type RootOptions struct {
	Config      *config.Config
	ContentFile string
	LogLevel    string
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "kosenfes",
		Short:         "夏の! 高専FES!! promotional site",
		Long:          "Serves, exports and publishes the 夏の! 高専FES!! promotional page and manages its copy.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.ContentFile != "" {
				cfg.ContentFile = opts.ContentFile
			}
			if opts.LogLevel != "" {
				cfg.LogLevel = opts.LogLevel
			}
			opts.Config = cfg

			logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, cmd.ErrOrStderr())
			slog.SetDefault(logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ContentFile, "content", "", "YAML file overriding the embedded copy (env CONTENT_FILE)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewPublishCommand(opts))
	cmd.AddCommand(NewContentCommand(opts))

	return cmd
}
