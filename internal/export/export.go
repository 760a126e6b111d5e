// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export writes the festival site as static files, either to a
// local directory or to any other Sink such as an S3 bucket.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kosenfes/internal/qr"
	"kosenfes/internal/render"
)

// Sink receives exported files. Keys are slash-separated relative paths.
type Sink interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// File is one exported artefact.
type File struct {
	Key         string
	ContentType string
	Body        []byte
}

// Files renders every file of the static site. The page is exported with
// the menu closed and relative links, so the copy works under any prefix
// such as a path-style bucket URL.
func Files(r *render.Renderer, baseURL string) ([]File, error) {
	home, err := r.StaticHome()
	if err != nil {
		return nil, err
	}
	code, err := qr.PNG(baseURL+"/", qr.DefaultSize)
	if err != nil {
		return nil, err
	}
	return []File{
		{Key: "index.html", ContentType: "text/html; charset=utf-8", Body: home},
		{Key: "assets/site.css", ContentType: "text/css; charset=utf-8", Body: r.Stylesheet()},
		{Key: "assets/site.js", ContentType: "text/javascript; charset=utf-8", Body: r.Script()},
		{Key: "qr.png", ContentType: "image/png", Body: code},
	}, nil
}

// Site renders the site and hands each file to sink. It stops at the first
// failed upload.
func Site(ctx context.Context, r *render.Renderer, baseURL string, sink Sink) (int, error) {
	files, err := Files(r, baseURL)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := sink.Put(ctx, f.Key, f.ContentType, f.Body); err != nil {
			return i, fmt.Errorf("export %s: %w", f.Key, err)
		}
		slog.Debug("exported file", "key", f.Key, "bytes", len(f.Body))
	}
	slog.Info("site exported", "files", len(files), "fingerprint", r.Festival().Fingerprint())
	return len(files), nil
}

// Dir is a Sink that writes under a local directory.
type Dir string

func (d Dir) Put(_ context.Context, key, _ string, body []byte) error {
	path := filepath.Join(string(d), filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
