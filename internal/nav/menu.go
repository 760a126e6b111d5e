// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package nav

// Viewport is the part of the host document a navigation needs. The
// lookups report false when the element is not (yet) available.
type Viewport interface {
	// HeaderHeight is the rendered height of the fixed header.
	HeaderHeight() (float64, bool)
	// ElementTop is the element's top relative to the viewport.
	ElementTop(id string) (float64, bool)
	// PageYOffset is the current vertical scroll position.
	PageYOffset() float64
	// ScrollTo starts a smooth scroll; a later call supersedes an earlier one.
	ScrollTo(top float64)
}

// Menu is the mobile navigation state. The zero value is closed.
type Menu struct {
	open bool
}

// Open reports whether the panel is shown.
func (m Menu) Open() bool { return m.open }

// Toggle flips the panel between open and closed.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Navigate closes the menu and scrolls so the target sits padding pixels
// below the header. When the target or the header cannot be measured the
// scroll is skipped without error. It reports whether a scroll was issued.
func (m *Menu) Navigate(v Viewport, id string, padding int) bool {
	m.open = false

	header, ok := v.HeaderHeight()
	if !ok {
		return false
	}
	top, ok := v.ElementTop(id)
	if !ok {
		return false
	}
	v.ScrollTo(ScrollTop(top, v.PageYOffset(), header, padding))
	return true
}

// ScrollTop is the document offset to scroll to so that an element whose
// viewport-relative top is elementTop ends up below the fixed header.
func ScrollTop(elementTop, pageYOffset, headerHeight float64, padding int) float64 {
	return elementTop + pageYOffset - headerHeight - float64(padding)
}

// ToggleHref is the no-JS link for the hamburger: it renders the opposite
// state of the current one.
func (m Menu) ToggleHref() string {
	return m.ToggleHrefOn(ServedPage)
}

// ToggleHrefOn is ToggleHref relative to page.
func (m Menu) ToggleHrefOn(page string) string {
	if m.open {
		return page + "#" + AnchorTop
	}
	return page + "?" + menuParam + "=open#" + AnchorTop
}
