// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package view composes the festival page from gomponents nodes. Each
// section is a plain function of the content so it can be rendered and
// tested on its own.
package view

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kosenfes/internal/content"
	"kosenfes/internal/nav"
	"kosenfes/internal/seo"
	"kosenfes/internal/style"
)

// Asset paths referenced from the page head.
const (
	StylesheetPath = "/assets/site.css"
	ScriptPath     = "/assets/site.js"
)

// PageProps is everything the page shell needs for one render.
type PageProps struct {
	Festival       *content.Festival
	Meta           seo.Meta
	StructuredData string // JSON-LD, already marshalled
	Menu           nav.Menu
	Particles      []style.ParticleSpec
	ScrollPadding  int
	AssetVersion   string // appended to asset URLs for cache busting

	// Relative renders every link relative to the document, for a static
	// copy hosted under an arbitrary path prefix.
	Relative bool
}

// page is the path fragment links and the menu toggle point at.
func (p PageProps) page() string {
	if p.Relative {
		return ""
	}
	return nav.ServedPage
}

// asset returns the URL of an asset path for this render.
func (p PageProps) asset(path string) string {
	if p.Relative {
		path = strings.TrimPrefix(path, "/")
	}
	return versioned(path, p.AssetVersion)
}

// Page renders the full document: header, then the sections in reading
// order, then the footer.
func Page(p PageProps) g.Node {
	f := p.Festival
	return h.Doctype(
		h.HTML(
			h.Lang(p.Meta.Lang),
			head(p),
			h.Body(
				Header(p.Menu, f.Brand, p.ScrollPadding, p.page()),
				h.Div(
					h.Class(style.PagePanel),
					Hero(f, p.Particles, p.page()),
					h.Main(
						About(f),
						EventDetails(f),
						Artists(f),
						VenueAccess(f),
						TicketInfo(f),
						Notes(f),
						SocialMedia(f),
					),
					Footer(f),
				),
			),
		),
	)
}

func head(p PageProps) g.Node {
	m := p.Meta
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
		g.El("title", g.Text(m.Title)),
		h.Meta(h.Name("description"), h.Content(m.Description)),
		h.Link(h.Rel("canonical"), h.Href(m.Canonical)),
		property("og:title", m.OG.Title),
		property("og:description", m.OG.Description),
		property("og:type", m.OG.Type),
		property("og:url", m.OG.URL),
		property("og:image", m.OG.Image),
		h.Meta(h.Name("twitter:card"), h.Content(m.Twitter.Card)),
		h.Meta(h.Name("twitter:title"), h.Content(m.Twitter.Title)),
		h.Link(h.Rel("stylesheet"), h.Href(p.asset(StylesheetPath))),
		g.If(p.StructuredData != "",
			h.Script(h.Type("application/ld+json"), g.Raw(p.StructuredData)),
		),
		h.Script(h.Src(p.asset(ScriptPath)), h.Defer()),
	)
}

func property(name, value string) g.Node {
	return h.Meta(g.Attr("property", name), h.Content(value))
}

func versioned(path, version string) string {
	if version == "" {
		return path
	}
	return path + "?v=" + version
}
