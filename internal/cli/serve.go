// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/acme/autocert"

	"kosenfes/internal/cache"
	"kosenfes/internal/config"
	"kosenfes/internal/content"
	"kosenfes/internal/handlers"
	"kosenfes/internal/middleware"
	"kosenfes/internal/router"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Serve the festival page, its assets and the QR code over HTTP.

SIGHUP reloads the copy from the database, the content file or the
embedded default without dropping connections. SIGINT and SIGTERM shut
the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts.Config)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"base_url", cfg.BaseURL,
		"cache", cfg.CacheEnabled(),
		"database", cfg.DatabaseEnabled(),
	)

	cs, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	l := loader(cfg, cs)

	rn, err := newRenderer(ctx, cfg, l)
	if err != nil {
		return err
	}

	var pages cache.Pages = cache.Nop{}
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return err
		}
		defer client.Close()
		pages = cache.NewPageCache(client, cfg.PageCacheTTL)
	} else {
		slog.Warn("valkey not configured, page cache disabled")
	}

	public, err := handlers.NewPublic(rn, pages, cfg.BaseURL)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	limiter.TrustProxy = cfg.TrustProxy
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(public, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	var challenge *http.Server
	if cfg.TLSEnabled() {
		m := &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.TLSDomain),
			Cache:      autocert.DirCache(cfg.TLSCacheDir),
		}
		srv.TLSConfig = m.TLSConfig()
		// Port 80 answers ACME challenges and redirects everything else.
		challenge = &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, "80"),
			Handler:           m.HTTPHandler(nil),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	errCh := make(chan error, 2)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	if challenge != nil {
		go func() {
			if err := challenge.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	defer signal.Stop(reload)

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for {
		select {
		case err := <-errCh:
			return err
		case <-reload:
			reloadContent(stop, cfg, l, public)
		case <-stop.Done():
			slog.Info("shutdown signal received")
			return shutdown(srv, challenge)
		}
	}
}

// reloadContent swaps in a renderer for the current copy. A broken
// revision is logged and the old copy keeps serving.
func reloadContent(ctx context.Context, cfg *config.Config, l content.Loader, public *handlers.Public) {
	rn, err := newRenderer(ctx, cfg, l)
	if err != nil {
		slog.Error("content reload failed, keeping current copy", "error", err)
		return
	}
	public.Swap(rn)
}

func shutdown(srv, challenge *http.Server) error {
	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if challenge != nil {
		if err := challenge.Shutdown(ctx); err != nil {
			slog.Warn("challenge listener shutdown", "error", err)
		}
	}
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}
