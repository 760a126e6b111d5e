// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo builds page metadata and schema.org structured data for the
// festival page.
package seo

import (
	"encoding/json"
	"strings"

	"kosenfes/internal/content"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

type Twitter struct {
	Card  string
	Title string
}

// Meta is everything that goes into <head> besides assets.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        string
	OG          OpenGraph
	Twitter     Twitter
}

// ForFestival derives metadata from the copy. baseURL must be absolute and
// without a trailing slash.
func ForFestival(f *content.Festival, baseURL string) Meta {
	title := f.Title()
	desc := strings.TrimSpace(f.Hero.Subtitle + " " + f.Schedule.DateLabel + " @ " + f.Schedule.Venue)
	return Meta{
		Title:       title,
		Description: desc,
		Canonical:   baseURL + "/",
		Lang:        "ja",
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			Image:       baseURL + "/qr.png",
			Type:        "website",
			URL:         baseURL + "/",
		},
		Twitter: Twitter{Card: "summary", Title: title},
	}
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
