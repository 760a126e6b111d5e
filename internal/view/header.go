// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kosenfes/internal/nav"
	"kosenfes/internal/style"
)

// HeaderID is the id of the fixed header; the browser script measures it.
const HeaderID = "site-header"

// menuID is the id of the collapsible link panel.
const menuID = "site-menu"

// Header renders the fixed navigation bar in the given menu state. The
// hamburger shows while closed and the close button while open, matching
// what the browser script toggles. Links point at page, see nav.ServedPage.
func Header(menu nav.Menu, brand []string, scrollPadding int, page string) g.Node {
	open := menu.Open()

	panelClass := style.NavLinks
	if open {
		panelClass += " " + style.Active
	}

	return h.Nav(
		h.ID(HeaderID),
		h.Class(style.HeaderNav),
		g.Attr("data-scroll-padding", strconv.Itoa(scrollPadding)),
		g.Attr("data-menu-open", strconv.FormatBool(open)),

		h.A(
			h.Href(nav.Link{Target: nav.AnchorTop}.HrefOn(page)),
			h.Class(style.HeaderLogo),
			g.Attr("data-nav-target", nav.AnchorTop),
			brandLines(brand),
		),

		menuToggle(menu, page, "☰", "メニューを開く", open),

		h.Div(
			h.ID(menuID),
			h.Class(panelClass),
			h.Div(
				h.Class(style.MenuClose),
				g.If(!open, g.Attr("hidden")),
				menuToggle(menu, page, "✕", "メニューを閉じる", false),
			),
			g.Map(nav.Links, func(l nav.Link) g.Node {
				return h.A(
					h.Href(l.HrefOn(page)),
					h.Class(style.NavLinkItem),
					g.Attr("data-nav-target", l.Target),
					g.Text(l.Label),
				)
			}),
		),
	)
}

// menuToggle is a link rather than a button so that it still works as a
// server round trip when scripts are disabled.
func menuToggle(menu nav.Menu, page, glyph, label string, hidden bool) g.Node {
	return h.A(
		h.Href(menu.ToggleHrefOn(page)),
		h.Class(style.MenuToggle),
		g.Attr("role", "button"),
		g.Attr("aria-label", label),
		g.Attr("aria-controls", menuID),
		g.Attr("aria-expanded", strconv.FormatBool(menu.Open())),
		g.Attr("data-menu-toggle"),
		g.If(hidden, g.Attr("hidden")),
		g.Text(glyph),
	)
}

// brandLines joins the brand with line breaks, e.g. "夏の!<br>高専FES!!".
func brandLines(brand []string) g.Node {
	nodes := make(g.Group, 0, len(brand)*2)
	for i, line := range brand {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		nodes = append(nodes, g.Text(line))
	}
	return nodes
}
