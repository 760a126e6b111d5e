// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package nav

import (
	"math/rand/v2"
	"net/url"
	"testing"
)

// fakeViewport records scroll requests against a fixed layout.
type fakeViewport struct {
	header    float64
	hasHeader bool
	tops      map[string]float64
	offset    float64
	scrolls   []float64
}

func (f *fakeViewport) HeaderHeight() (float64, bool) { return f.header, f.hasHeader }

func (f *fakeViewport) ElementTop(id string) (float64, bool) {
	top, ok := f.tops[id]
	return top, ok
}

func (f *fakeViewport) PageYOffset() float64 { return f.offset }

func (f *fakeViewport) ScrollTo(top float64) { f.scrolls = append(f.scrolls, top) }

func newViewport() *fakeViewport {
	tops := make(map[string]float64)
	for i, id := range Anchors() {
		tops[id] = float64(i * 600)
	}
	return &fakeViewport{header: 72, hasHeader: true, tops: tops, offset: 150}
}

func TestMenuStartsClosed(t *testing.T) {
	var m Menu
	if m.Open() {
		t.Fatal("zero Menu should be closed")
	}
}

func TestToggleTwiceReturnsClosed(t *testing.T) {
	var m Menu
	m.Toggle()
	if !m.Open() {
		t.Fatal("first toggle should open the menu")
	}
	m.Toggle()
	if m.Open() {
		t.Fatal("second toggle should close the menu")
	}
}

// TestOpenIffOddToggles drives random click sequences and checks that the
// menu is open exactly when the toggles since the last navigation are odd.
func TestOpenIffOddToggles(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	vp := newViewport()

	for run := 0; run < 200; run++ {
		var m Menu
		toggles := 0
		for step := 0; step < 40; step++ {
			if rng.IntN(4) == 0 {
				m.Navigate(vp, Links[rng.IntN(len(Links))].Target, 20)
				toggles = 0
			} else {
				m.Toggle()
				toggles++
			}
			if m.Open() != (toggles%2 == 1) {
				t.Fatalf("run %d step %d: open=%v after %d toggles", run, step, m.Open(), toggles)
			}
		}
	}
}

func TestNavigateAlwaysCloses(t *testing.T) {
	for _, startOpen := range []bool{false, true} {
		for _, target := range []string{AnchorTickets, "missing-section"} {
			m := Menu{open: startOpen}
			m.Navigate(newViewport(), target, 20)
			if m.Open() {
				t.Errorf("startOpen=%v target=%q: menu left open", startOpen, target)
			}
		}
	}
}

func TestNavigateScrollsBelowHeader(t *testing.T) {
	vp := newViewport()
	m := Menu{open: true}

	if !m.Navigate(vp, AnchorTickets, 20) {
		t.Fatal("expected a scroll to be issued")
	}
	if m.Open() {
		t.Error("menu should be closed after navigation")
	}
	if len(vp.scrolls) != 1 {
		t.Fatalf("scrolls: got %d, want 1", len(vp.scrolls))
	}
	want := vp.tops[AnchorTickets] + vp.offset - vp.header - 20
	if vp.scrolls[0] != want {
		t.Errorf("scroll top: got %v, want %v", vp.scrolls[0], want)
	}
}

func TestNavigateSkipsWhenUnavailable(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		vp := newViewport()
		var m Menu
		if m.Navigate(vp, "no-such-anchor", 20) {
			t.Error("should not report a scroll")
		}
		if len(vp.scrolls) != 0 {
			t.Errorf("unexpected scrolls: %v", vp.scrolls)
		}
	})

	t.Run("header not mounted", func(t *testing.T) {
		vp := newViewport()
		vp.hasHeader = false
		var m Menu
		if m.Navigate(vp, AnchorAbout, 20) {
			t.Error("should not report a scroll")
		}
		if len(vp.scrolls) != 0 {
			t.Errorf("unexpected scrolls: %v", vp.scrolls)
		}
	})
}

func TestScrollTop(t *testing.T) {
	tests := []struct {
		name                       string
		elementTop, offset, header float64
		padding                    int
		want                       float64
	}{
		{"already scrolled", 300, 1200, 64, 20, 1416},
		{"at top of page", 800, 0, 64, 20, 716},
		{"no padding", 100, 0, 60, 0, 40},
		{"element above viewport", -250, 2000, 72, 20, 1658},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollTop(tt.elementTop, tt.offset, tt.header, tt.padding); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuFromQuery(t *testing.T) {
	tests := []struct {
		query string
		open  bool
	}{
		{"", false},
		{"menu=open", true},
		{"menu=closed", false},
		{"menu=OPEN", false},
		{"other=1&menu=open", true},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", tt.query, err)
		}
		if got := MenuFromQuery(q).Open(); got != tt.open {
			t.Errorf("MenuFromQuery(%q): got %v, want %v", tt.query, got, tt.open)
		}
	}
}

func TestToggleHref(t *testing.T) {
	var m Menu
	if got := m.ToggleHref(); got != "/?menu=open#top" {
		t.Errorf("closed ToggleHref: got %q", got)
	}
	m.Toggle()
	if got := m.ToggleHref(); got != "/#top" {
		t.Errorf("open ToggleHref: got %q", got)
	}
	if got := m.ToggleHrefOn(""); got != "#top" {
		t.Errorf("open relative ToggleHref: got %q", got)
	}
}

func TestAnchorsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range Anchors() {
		if seen[id] {
			t.Errorf("duplicate anchor %q", id)
		}
		seen[id] = true
	}
	if len(seen) != 7 {
		t.Errorf("anchors: got %d, want 7", len(seen))
	}
	for _, l := range Links {
		if l.Href() != "/#"+l.Target {
			t.Errorf("Href for %q: got %q", l.Target, l.Href())
		}
		if l.HrefOn("") != "#"+l.Target {
			t.Errorf("relative Href for %q: got %q", l.Target, l.HrefOn(""))
		}
	}
}
