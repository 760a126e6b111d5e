// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"kosenfes/internal/cache"
	"kosenfes/internal/config"
	"kosenfes/internal/content"
)

var errNoDatabase = errors.New("POSTGRES_HOST is not set; content revisions need a database")

// NewContentCommand groups the copy management subcommands.
func NewContentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and update the page copy",
	}
	cmd.AddCommand(newContentCheckCommand())
	cmd.AddCommand(newContentShowCommand(rootOpts))
	cmd.AddCommand(newContentPushCommand(rootOpts))
	cmd.AddCommand(newContentHistoryCommand(rootOpts))
	return cmd
}

func newContentCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a YAML copy file without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := content.FromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d artists, fingerprint %s)\n",
				args[0], f.Title(), len(f.Lineup.Artists), f.Fingerprint())
			return nil
		},
	}
}

func newContentShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the copy currently in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := rootOpts.Config

			cs, db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}
			f, err := loader(cfg, cs).Load(ctx)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(f.Raw())
			return err
		},
	}
}

func newContentPushCommand(rootOpts *RootOptions) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Store a YAML copy file as the newest revision",
		Long: `Validate the file and store it as the newest revision in PostgreSQL.
Running servers pick it up on SIGHUP or restart. Cached pages are keyed by
content fingerprint, so stale entries are never served; they are cleared
here to free memory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := rootOpts.Config
			if !cfg.DatabaseEnabled() {
				return errNoDatabase
			}

			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read content file: %w", err)
			}

			cs, db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			rev, err := cs.Save(ctx, body, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored revision %d (fingerprint %s)\n", rev.ID, rev.Fingerprint)

			clearPageCache(cmd, cfg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "m", "", "short description of the change")
	return cmd
}

// clearPageCache drops cached pages when Valkey is configured. Failure is
// not fatal; entries expire on their own.
func clearPageCache(cmd *cobra.Command, cfg *config.Config) {
	if !cfg.CacheEnabled() {
		return
	}
	client, err := cache.ConnectValkey(cmd.Context(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("page cache not cleared", "error", err)
		return
	}
	defer client.Close()

	n, err := cache.NewPageCache(client, cfg.PageCacheTTL).InvalidateAll(cmd.Context())
	if err != nil {
		slog.Warn("page cache not cleared", "error", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %d cached pages\n", n)
}

func newContentHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored revisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := rootOpts.Config
			if !cfg.DatabaseEnabled() {
				return errNoDatabase
			}

			cs, db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			revs, err := cs.History(ctx, limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFINGERPRINT\tCREATED\tNOTE")
			for _, r := range revs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Fingerprint, r.CreatedAt.Format(time.DateTime), r.Note)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of revisions to list")
	return cmd
}
