// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the festival page and its assets over HTTP.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"kosenfes/internal/cache"
	"kosenfes/internal/nav"
	"kosenfes/internal/qr"
	"kosenfes/internal/render"
)

// Public groups the handlers of the public site. It checks the Valkey page
// cache before rendering and stores rendered pages on a miss. The renderer
// can be swapped at runtime when the content is reloaded.
type Public struct {
	renderer atomic.Pointer[render.Renderer]
	pages    cache.Pages
	qrPNG    []byte
}

// NewPublic creates the public handler group. pages may be nil, in which
// case nothing is cached.
func NewPublic(r *render.Renderer, pages cache.Pages, baseURL string) (*Public, error) {
	if pages == nil {
		pages = cache.Nop{}
	}
	code, err := qr.PNG(baseURL+"/", qr.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("page qr code: %w", err)
	}
	p := &Public{pages: pages, qrPNG: code}
	p.renderer.Store(r)
	return p, nil
}

// Swap replaces the renderer used for new requests.
func (p *Public) Swap(r *render.Renderer) {
	old := p.renderer.Swap(r)
	slog.Info("renderer swapped",
		"from", old.Festival().Fingerprint(),
		"to", r.Festival().Fingerprint(),
	)
}

// Renderer returns the renderer currently serving requests.
func (p *Public) Renderer() *render.Renderer {
	return p.renderer.Load()
}

// Home renders the festival page. "?menu=open" renders the header menu
// expanded for clients without JS.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rn := p.renderer.Load()
	menu := nav.MenuFromQuery(r.URL.Query())
	key := cache.HomeKey(menu.Open(), rn.CacheTag())

	etag := `"` + key + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=60")
	if matchesETag(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if cached, ok := p.pages.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	page, err := rn.Home(menu)
	if err != nil {
		slog.Error("render home failed", "error", err, "fingerprint", rn.Festival().Fingerprint())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pages.Set(ctx, key, page)
	writeHTML(w, http.StatusOK, page)
}

// Stylesheet serves the generated CSS.
func (p *Public) Stylesheet(w http.ResponseWriter, r *http.Request) {
	rn := p.renderer.Load()
	serveAsset(w, r, "text/css; charset=utf-8", rn.AssetVersion(), rn.Stylesheet())
}

// Script serves the menu and scroll script.
func (p *Public) Script(w http.ResponseWriter, r *http.Request) {
	rn := p.renderer.Load()
	serveAsset(w, r, "text/javascript; charset=utf-8", rn.AssetVersion(), rn.Script())
}

// QR serves a PNG QR code of the page URL for posters and flyers.
func (p *Public) QR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(p.qrPNG)
}

// NotFound renders the festival-styled 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := p.renderer.Load().NotFound(w); err != nil {
		slog.Error("render not found page failed", "error", err, "path", r.URL.Path)
	}
}

// serveAsset writes a versioned asset. Requests that carry the current
// version in ?v= may cache it forever.
func serveAsset(w http.ResponseWriter, r *http.Request, contentType, version string, body []byte) {
	etag := `"` + version + `"`
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("ETag", etag)
	if r.URL.Query().Get("v") == version {
		h.Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		h.Set("Cache-Control", "public, max-age=300")
	}
	if matchesETag(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Write(body)
}

// matchesETag reports whether If-None-Match names etag.
func matchesETag(r *http.Request, etag string) bool {
	inm := r.Header.Get("If-None-Match")
	if inm == "" {
		return false
	}
	for _, candidate := range strings.Split(inm, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
