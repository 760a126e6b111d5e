// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"bytes"
	"strings"
	"testing"

	"kosenfes/internal/content"
	"kosenfes/internal/nav"
)

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	f, err := content.Embedded()
	if err != nil {
		t.Fatalf("Embedded(): %v", err)
	}
	r, err := New(f, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Error("nil festival: expected error")
	}
	f, _ := content.Embedded()
	if _, err := New(f, Options{ScrollPadding: -1}); err == nil {
		t.Error("negative padding: expected error")
	}
}

func TestHomeMenuStates(t *testing.T) {
	r := newRenderer(t, Options{BaseURL: "https://fes.example.jp", ScrollPadding: 24})

	closed, err := r.Home(nav.Menu{})
	if err != nil {
		t.Fatalf("Home(closed): %v", err)
	}
	var m nav.Menu
	m.Toggle()
	open, err := r.Home(m)
	if err != nil {
		t.Fatalf("Home(open): %v", err)
	}

	if !bytes.HasPrefix(bytes.ToLower(closed), []byte("<!doctype html>")) {
		t.Errorf("page should start with a doctype, got %q", closed[:20])
	}
	if !bytes.Contains(closed, []byte(`data-menu-open="false"`)) {
		t.Error("closed page missing data-menu-open=false")
	}
	if !bytes.Contains(open, []byte(`class="nav-links active"`)) {
		t.Error("open page missing active menu panel")
	}
	if !bytes.Contains(closed, []byte(`data-scroll-padding="24"`)) {
		t.Error("scroll padding not forwarded to the header")
	}
	if !bytes.Contains(closed, []byte(`https://fes.example.jp/`)) {
		t.Error("canonical URL missing")
	}
}

func TestStaticHome(t *testing.T) {
	r := newRenderer(t, Options{BaseURL: "https://fes.example.jp"})

	page, err := r.StaticHome()
	if err != nil {
		t.Fatalf("StaticHome: %v", err)
	}
	if !bytes.Contains(page, []byte(`data-menu-open="false"`)) {
		t.Error("static page should have the menu closed")
	}
	if !bytes.Contains(page, []byte(`href="assets/site.css?v=`+r.AssetVersion()+`"`)) {
		t.Error("stylesheet link should be relative")
	}
	if bytes.Contains(page, []byte(`href="/#`)) {
		t.Error("anchor links should not be root-relative")
	}

	served, err := r.Home(nav.Menu{})
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if !bytes.Contains(served, []byte(`href="/assets/site.css?v=`)) {
		t.Error("served page should keep root-relative assets")
	}
}

func TestHomeDeterministic(t *testing.T) {
	a := newRenderer(t, Options{ParticleSeed: 11})
	b := newRenderer(t, Options{ParticleSeed: 11})
	c := newRenderer(t, Options{ParticleSeed: 12})

	pa, _ := a.Home(nav.Menu{})
	pb, _ := b.Home(nav.Menu{})
	pc, _ := c.Home(nav.Menu{})

	if !bytes.Equal(pa, pb) {
		t.Error("same seed should render identical pages")
	}
	if bytes.Equal(pa, pc) {
		t.Error("different seeds should move the particles")
	}
}

func TestAssets(t *testing.T) {
	r := newRenderer(t, Options{})

	if !bytes.Contains(r.Stylesheet(), []byte("@keyframes wave")) {
		t.Error("stylesheet missing wave keyframes")
	}
	if !bytes.Contains(r.Script(), []byte("data-nav-target")) {
		t.Error("script does not handle nav targets")
	}
	if len(r.AssetVersion()) != 8 {
		t.Errorf("AssetVersion length: got %d, want 8", len(r.AssetVersion()))
	}
	if !strings.HasPrefix(r.CacheTag(), r.Festival().Fingerprint()+".") {
		t.Errorf("CacheTag: got %q", r.CacheTag())
	}
}

func TestNotFound(t *testing.T) {
	r := newRenderer(t, Options{})

	var buf bytes.Buffer
	if err := r.NotFound(&buf); err != nil {
		t.Fatalf("NotFound: %v", err)
	}
	body := buf.String()
	for _, want := range []string{"404", "夏の! 高専FES!!", `href="/#top"`, "/assets/site.css?v=" + r.AssetVersion()} {
		if !strings.Contains(body, want) {
			t.Errorf("not found page missing %q", want)
		}
	}
}
