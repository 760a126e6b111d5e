// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns the festival content into the bytes the site serves:
// the page in either menu state, the stylesheet, the browser script and the
// not found page.
package render

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io"

	"kosenfes/internal/content"
	"kosenfes/internal/metrics"
	"kosenfes/internal/nav"
	"kosenfes/internal/seo"
	"kosenfes/internal/style"
	"kosenfes/internal/view"
	"kosenfes/web"
)

//go:embed templates/*.html
var templateFS embed.FS

// scriptPath is the browser script inside web.StaticFS.
const scriptPath = "static/site.js"

// Options tune a Renderer. Zero values fall back to the defaults.
type Options struct {
	BaseURL       string // absolute, no trailing slash
	ScrollPadding int
	ParticleSeed  uint64
	ParticleCount int
}

// Renderer holds everything derived from one content revision. It is safe
// for concurrent use; nothing is mutated after New.
type Renderer struct {
	festival  *content.Festival
	opts      Options
	meta      seo.Meta
	jsonLD    string
	particles []style.ParticleSpec
	css       []byte
	script    []byte
	version   string
	notFound  *template.Template
}

// New prepares a Renderer for f. The stylesheet, particles and structured
// data are computed once here.
func New(f *content.Festival, opts Options) (*Renderer, error) {
	if f == nil {
		return nil, fmt.Errorf("render: nil festival")
	}
	if opts.ParticleCount <= 0 {
		opts.ParticleCount = style.DefaultParticleCount
	}
	if opts.ScrollPadding < 0 {
		return nil, fmt.Errorf("render: negative scroll padding %d", opts.ScrollPadding)
	}

	script, err := web.StaticFS.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("read browser script: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/not_found.html")
	if err != nil {
		return nil, fmt.Errorf("parse not found template: %w", err)
	}

	css := []byte(style.Default().String())

	sum := sha256.New()
	sum.Write(css)
	sum.Write(script)

	return &Renderer{
		festival:  f,
		opts:      opts,
		meta:      seo.ForFestival(f, opts.BaseURL),
		jsonLD:    seo.JSON(seo.MusicEvent(f, opts.BaseURL)),
		particles: style.SeededParticles(opts.ParticleSeed, opts.ParticleCount),
		css:       css,
		script:    script,
		version:   hex.EncodeToString(sum.Sum(nil)[:4]),
		notFound:  tmpl,
	}, nil
}

// Festival returns the content this renderer was built from.
func (r *Renderer) Festival() *content.Festival {
	return r.festival
}

// AssetVersion identifies the current stylesheet and script.
func (r *Renderer) AssetVersion() string {
	return r.version
}

// CacheTag changes whenever the rendered page could change: on a content
// edit or on a new build of the assets.
func (r *Renderer) CacheTag() string {
	return r.festival.Fingerprint() + "." + r.version
}

// Home renders the full page with the menu in the given state.
func (r *Renderer) Home(menu nav.Menu) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteHome(&buf, menu); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHome streams the page to w.
func (r *Renderer) WriteHome(w io.Writer, menu nav.Menu) error {
	return r.write(w, menu, false)
}

// StaticHome renders the page for a static copy: menu closed and every
// link relative to the document.
func (r *Renderer) StaticHome() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.write(&buf, nav.Menu{}, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) write(w io.Writer, menu nav.Menu, relative bool) error {
	page := view.Page(view.PageProps{
		Festival:       r.festival,
		Meta:           r.meta,
		StructuredData: r.jsonLD,
		Menu:           menu,
		Particles:      r.particles,
		ScrollPadding:  r.opts.ScrollPadding,
		AssetVersion:   r.version,
		Relative:       relative,
	})
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	metrics.PageRenders.Inc()
	return nil
}

// Stylesheet returns the site CSS. Callers must not modify the slice.
func (r *Renderer) Stylesheet() []byte {
	return r.css
}

// Script returns the browser script. Callers must not modify the slice.
func (r *Renderer) Script() []byte {
	return r.script
}

type notFoundData struct {
	Title      string
	Stylesheet string
	Copyright  string
}

// NotFound writes the 404 page body. Status codes are the caller's concern.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.notFound.Execute(w, notFoundData{
		Title:      r.festival.Title(),
		Stylesheet: view.StylesheetPath + "?v=" + r.version,
		Copyright:  r.festival.Copyright(),
	})
}
