// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kosenfes/internal/export"
	"kosenfes/internal/storage"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the static site to a directory",
		Long: `Render the page with the menu closed and write it together with the
stylesheet, the script and the QR code to a directory that any static
host can serve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := rootOpts.Config

			rn, err := siteRenderer(ctx, cfg)
			if err != nil {
				return err
			}
			n, err := export.Site(ctx, rn, cfg.BaseURL, export.Dir(out))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s (content %s)\n", n, out, rn.Festival().Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

// NewPublishCommand creates the publish command.
func NewPublishCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Upload the static site to the S3 bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := rootOpts.Config

			if !cfg.StorageEnabled() {
				return errors.New("publish: S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY must be set")
			}
			client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
			if err != nil {
				return err
			}

			rn, err := siteRenderer(ctx, cfg)
			if err != nil {
				return err
			}
			n, err := export.Site(ctx, rn, cfg.BaseURL, client)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d files: %s\n", n, client.FileURL("index.html"))
			return nil
		},
	}
}
