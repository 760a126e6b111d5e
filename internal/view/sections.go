// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"log/slog"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kosenfes/internal/content"
	"kosenfes/internal/markdown"
	"kosenfes/internal/nav"
	"kosenfes/internal/style"
)

// SocialSectionID anchors the social links; it is not in the header menu.
const SocialSectionID = "social-section"

// Hero is the banner with the wave layers and floating light particles.
func Hero(f *content.Festival, particles []style.ParticleSpec, page string) g.Node {
	return h.Header(
		h.ID(nav.AnchorTop),
		h.Class(style.HeroHeader),
		h.Div(h.Class(style.WaveLayer)),
		h.Div(h.Class(style.WaveLayer+" "+style.WaveLayer2)),
		h.Div(
			h.Class(style.Particles),
			g.Attr("aria-hidden", "true"),
			g.Map(particles, func(p style.ParticleSpec) g.Node {
				return h.Div(h.Class(style.Particle), g.Attr("style", p.InlineStyle()))
			}),
		),
		h.Div(
			h.Class(style.HeroContent),
			h.H1(h.Class(style.HeroTitle), brandLines(f.Brand)),
			h.P(h.Class(style.HeroSubtitle), g.Text(f.Hero.Subtitle)),
			h.A(
				h.Href(nav.Link{Target: nav.AnchorTickets}.HrefOn(page)),
				h.Class(style.HeroButton),
				g.Attr("data-nav-target", nav.AnchorTickets),
				g.Text(f.Hero.CTA),
			),
		),
	)
}

// SectionTitle is the gradient heading shared by every section.
func SectionTitle(title string) g.Node {
	return h.H2(h.Class(style.SectionTitle), g.Text(title))
}

// section wraps a titled block; bg selects the body background class.
func section(id, title, bg string, children ...g.Node) g.Node {
	return h.Section(
		h.ID(id),
		h.Class(style.SectionWrapper),
		SectionTitle(title),
		h.Div(
			h.Class(style.SectionBody+" "+bg),
			g.Group(children),
		),
	)
}

func About(f *content.Festival) g.Node {
	a := f.About
	return section(nav.AnchorAbout, a.Title, style.BgWhite,
		h.P(
			h.Class(style.TextBody),
			inlineMarkdown(a.Body),
			h.Br(),
			h.Span(h.Class(style.TextHighlight), g.Text(a.Highlight)),
			g.Text(" "+a.Closing),
		),
	)
}

func EventDetails(f *content.Festival) g.Node {
	return section(nav.AnchorDetails, f.Schedule.Title, style.BgBlue,
		h.Div(
			h.Class(style.Grid),
			g.Map(f.Details(), func(it content.DetailItem) g.Node {
				return h.Div(
					h.Class(style.DetailItem),
					h.Span(h.Class(style.DetailIcon), g.Text(it.Icon)),
					h.Div(
						h.P(h.Class(style.DetailLabel), g.Text(it.Label)),
						h.P(h.Class(style.DetailText), g.Text(it.Text)),
					),
				)
			}),
		),
	)
}

// ArtistCard introduces one act.
func ArtistCard(a content.Artist) g.Node {
	return h.Div(
		h.Class(style.ArtistCard),
		h.H3(h.Class(style.ArtistName), g.Text(a.Name)),
		h.P(h.Class(style.ArtistDescription), g.Text(a.Description)),
	)
}

// Artists renders one card per artist followed by a single "more" line.
func Artists(f *content.Festival) g.Node {
	l := f.Lineup
	return section(nav.AnchorArtists, l.Title, style.BgWhite,
		h.Div(
			h.Class(style.Grid+" "+style.Grid3),
			g.Map(l.Artists, ArtistCard),
		),
		g.If(l.More != "", h.P(h.Class(style.ArtistMore), g.Text(l.More))),
	)
}

func VenueAccess(f *content.Festival) g.Node {
	v := f.Venue
	return section(nav.AnchorVenue, v.Title, style.BgBlue,
		h.Div(
			h.Class(style.TextBody),
			h.P(
				h.Class(style.VenueAddress),
				h.Strong(g.Text("会場:")),
				g.Text(" "),
				h.Strong(g.Text(v.Name)),
				h.Br(),
				g.Text(v.Address()),
			),
			h.Div(
				h.Class(style.MapFrame),
				h.IFrame(
					h.Src(v.MapURL),
					h.Width("600"),
					h.Height("450"),
					h.Class(style.MapIframe),
					g.Attr("title", v.Name),
					g.Attr("allowfullscreen"),
					g.Attr("loading", "lazy"),
					g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
				),
			),
			h.H3(h.Class(style.AccessTitle), g.Text(v.AccessTitle)),
			h.Ul(
				h.Class(style.AccessList),
				g.Map(v.Access, func(line string) g.Node {
					return h.Li(inlineMarkdown(line))
				}),
			),
		),
	)
}

func TicketInfo(f *content.Festival) g.Node {
	t := f.Tickets
	return section(nav.AnchorTickets, t.Title, style.BgGreen,
		g.Map(t.Phases, ticketPhase),
	)
}

func ticketPhase(p content.TicketPhase) g.Node {
	return h.Div(
		h.Class(style.TicketPhase),
		h.H3(h.Class(style.TicketSubtitle), g.Text(p.Title)),
		h.Ul(
			h.Class(style.InfoList),
			g.Map(p.Rows, func(r content.LabelText) g.Node {
				return h.Li(h.Span(h.Class(style.InfoLabel), g.Text(r.Label+":")), g.Text(" "+r.Value))
			}),
			g.Iff(p.Link != nil, func() g.Node {
				return h.Li(
					h.Span(h.Class(style.InfoLabel), g.Text(p.Link.Label+":")),
					g.Text(" "),
					h.A(h.Href(p.Link.Href), h.Class(style.TicketLink), g.Text(p.Link.Text)),
				)
			}),
			g.Map(p.Notes, func(n string) g.Node { return h.Li(g.Text(n)) }),
		),
	)
}

func Notes(f *content.Festival) g.Node {
	n := f.Notes
	return section(nav.AnchorNotes, n.Title, style.BgBlue,
		h.Ul(
			h.Class(style.InfoList),
			g.Map(n.Items, func(item string) g.Node { return h.Li(inlineMarkdown(item)) }),
		),
	)
}

func SocialMedia(f *content.Festival) g.Node {
	s := f.Social
	return section(SocialSectionID, s.Title, style.BgWhite,
		h.Div(
			h.Class(style.SocialLinks),
			g.Map(s.Links, func(l content.SocialLink) g.Node {
				return h.A(
					h.Href(l.Href),
					h.Class(style.SocialLink),
					h.Span(h.Class(style.SocialIcon), g.Text(l.Icon)),
					g.Text(" "+l.Label),
				)
			}),
		),
		h.P(
			h.Class(style.TextBody+" "+style.SocialNote),
			g.Text(s.HashtagLead+" "),
			h.Span(h.Class(style.SocialHashtag), g.Text(s.Hashtag)),
			g.Text(" "+s.HashtagTail),
		),
	)
}

func Footer(f *content.Festival) g.Node {
	return h.Footer(
		h.Class(style.FooterStyle),
		h.P(g.Text(f.Copyright())),
	)
}

// inlineMarkdown renders a copy snippet. Conversion failures fall back to
// the escaped source text.
func inlineMarkdown(src string) g.Node {
	out, err := markdown.Inline(src)
	if err != nil {
		slog.Warn("markdown render failed, using plain text", "error", err)
		return g.Text(src)
	}
	return g.Raw(out)
}
