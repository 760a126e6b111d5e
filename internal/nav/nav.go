// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package nav defines the header navigation: the anchor targets, their
// labels, and the open/closed state of the mobile menu together with the
// scroll offset applied when a link is followed.
package nav

import (
	"net/url"
)

// Section anchor ids. Each must appear exactly once in the rendered page.
const (
	AnchorTop     = "top"
	AnchorAbout   = "about-section"
	AnchorDetails = "details-section"
	AnchorArtists = "artist-section"
	AnchorVenue   = "venue-section"
	AnchorTickets = "ticket-info"
	AnchorNotes   = "notes-section"
)

// Link is one entry of the header menu.
type Link struct {
	Target string // anchor id
	Label  string
}

// ServedPage is the page path when the server renders the site. A static
// export passes "" so every link stays relative to the exported document.
const ServedPage = "/"

// Href is the fragment link used by the served page. It carries no query
// string, so following it without JS lands on the closed menu.
func (l Link) Href() string {
	return l.HrefOn(ServedPage)
}

// HrefOn is the fragment link relative to page.
func (l Link) HrefOn(page string) string {
	return page + "#" + l.Target
}

// Links is the header menu in display order. The logo links to AnchorTop
// and is not part of this list.
var Links = []Link{
	{Target: AnchorAbout, Label: "イベント概要"},
	{Target: AnchorDetails, Label: "開催詳細"},
	{Target: AnchorArtists, Label: "アーティスト"},
	{Target: AnchorVenue, Label: "会場アクセス"},
	{Target: AnchorTickets, Label: "チケット"},
	{Target: AnchorNotes, Label: "注意事項"},
}

// Anchors returns every id the header can scroll to, logo target first.
func Anchors() []string {
	ids := make([]string, 0, len(Links)+1)
	ids = append(ids, AnchorTop)
	for _, l := range Links {
		ids = append(ids, l.Target)
	}
	return ids
}

// menuParam is the query parameter that renders the menu open for clients
// without JS.
const menuParam = "menu"

// MenuFromQuery returns the menu state requested by the query string.
// Only "menu=open" opens it; anything else is the default closed state.
func MenuFromQuery(q url.Values) Menu {
	return Menu{open: q.Get(menuParam) == "open"}
}
