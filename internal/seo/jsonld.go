// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"strconv"
	"strings"

	"kosenfes/internal/content"
)

// jstOffset is appended to local times; the event runs in Japan.
const jstOffset = "+09:00"

// MusicEvent returns a schema.org MusicEvent for the festival.
func MusicEvent(f *content.Festival, baseURL string) map[string]any {
	s := f.Schedule
	m := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "MusicEvent",
		"name":                f.Title(),
		"description":         f.Hero.Subtitle,
		"url":                 baseURL + "/",
		"eventStatus":         "https://schema.org/EventScheduled",
		"eventAttendanceMode": "https://schema.org/OfflineEventAttendanceMode",
		"location": map[string]any{
			"@type": "Place",
			"name":  f.Venue.Name,
			"address": map[string]any{
				"@type":           "PostalAddress",
				"postalCode":      f.Venue.PostalCode,
				"addressRegion":   f.Venue.Region,
				"addressLocality": f.Venue.Locality,
				"streetAddress":   f.Venue.Street,
				"addressCountry":  "JP",
			},
		},
	}
	if s.Date != "" {
		if s.Start != "" {
			m["startDate"] = s.Date + "T" + s.Start + ":00" + jstOffset
		}
		if s.Doors != "" {
			m["doorTime"] = s.Date + "T" + s.Doors + ":00" + jstOffset
		}
		if s.End != "" {
			m["endDate"] = s.Date + "T" + s.End + ":00" + jstOffset
		}
	}

	offers := make([]map[string]any, 0, 2)
	if s.Price.Advance > 0 {
		offers = append(offers, offer("前売り", s.Price.Advance, baseURL))
	}
	if s.Price.Door > 0 {
		offers = append(offers, offer("当日", s.Price.Door, baseURL))
	}
	if len(offers) > 0 {
		m["offers"] = offers
	}

	performers := make([]map[string]any, 0, len(f.Lineup.Artists))
	for _, a := range f.Lineup.Artists {
		performers = append(performers, map[string]any{
			"@type": "PerformingGroup",
			"name":  stripLeadingEmoji(a.Name),
		})
	}
	if len(performers) > 0 {
		m["performer"] = performers
	}
	return m
}

func offer(name string, yen int64, baseURL string) map[string]any {
	return map[string]any{
		"@type":         "Offer",
		"name":          name,
		"price":         strconv.FormatInt(yen, 10),
		"priceCurrency": "JPY",
		"url":           baseURL + "/#ticket-info",
		"availability":  "https://schema.org/InStock",
	}
}

// stripLeadingEmoji drops a decorative "🌊 " style prefix from a name.
func stripLeadingEmoji(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 && i <= 8 {
		head := name[:i]
		for _, r := range head {
			if r < 0x2000 {
				return name
			}
		}
		return strings.TrimSpace(name[i+1:])
	}
	return name
}
