// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"kosenfes/internal/config"
	"kosenfes/internal/content"
	"kosenfes/internal/database"
	"kosenfes/internal/render"
	"kosenfes/internal/store"
)

// openStore connects to PostgreSQL and applies migrations. It returns
// (nil, nil, nil) when no database is configured.
func openStore(ctx context.Context, cfg *config.Config) (*store.ContentStore, *sql.DB, error) {
	if !cfg.DatabaseEnabled() {
		return nil, nil, nil
	}
	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.NewContentStore(db), db, nil
}

// loader builds the content loader for cfg. cs may be nil.
func loader(cfg *config.Config, cs *store.ContentStore) content.Loader {
	l := content.Loader{File: cfg.ContentFile}
	if cs != nil {
		l.Revisions = cs
	}
	return l
}

// newRenderer loads the content in effect and prepares a renderer for it.
func newRenderer(ctx context.Context, cfg *config.Config, l content.Loader) (*render.Renderer, error) {
	f, err := l.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	rn, err := render.New(f, render.Options{
		BaseURL:       cfg.BaseURL,
		ScrollPadding: cfg.ScrollPadding,
		ParticleSeed:  cfg.ParticleSeed,
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("renderer ready", "fingerprint", f.Fingerprint(), "assets", rn.AssetVersion())
	return rn, nil
}

// siteRenderer is the one-shot path used by export and publish.
func siteRenderer(ctx context.Context, cfg *config.Config) (*render.Renderer, error) {
	cs, db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if db != nil {
		defer db.Close()
	}
	return newRenderer(ctx, cfg, loader(cfg, cs))
}
