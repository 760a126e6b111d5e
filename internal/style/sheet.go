// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

// Animation names.
const (
	Wave         = "wave"
	FloatAndFade = "floatAndFade"
)

// Class names used by the view layer.
const (
	HeaderNav   = "header-nav"
	HeaderLogo  = "header-logo"
	MenuToggle  = "menu-toggle"
	MenuClose   = "menu-close"
	NavLinks    = "nav-links"
	NavLinkItem = "nav-link"
	Active      = "active"

	PagePanel = "page-panel"

	HeroHeader   = "hero"
	HeroContent  = "hero-content"
	HeroTitle    = "hero-title"
	HeroSubtitle = "hero-subtitle"
	HeroButton   = "hero-button"
	WaveLayer    = "wave-layer"
	WaveLayer2   = "wave-layer-2"
	Particles    = "particles"
	Particle     = "particle"

	SectionWrapper = "section"
	SectionTitle   = "section-title"
	SectionBody    = "section-body"
	BgWhite        = "bg-white"
	BgBlue         = "bg-blue"
	BgGreen        = "bg-green"

	TextBody      = "text-body"
	TextHighlight = "text-highlight"
	Grid          = "grid"
	Grid3         = "grid-3"
	DetailItem    = "detail-item"
	DetailIcon    = "detail-icon"
	DetailLabel   = "detail-label"
	DetailText    = "detail-text"

	ArtistCard        = "artist-card"
	ArtistName        = "artist-name"
	ArtistDescription = "artist-description"
	ArtistMore        = "artist-more"

	VenueAddress = "venue-address"
	MapFrame     = "map-frame"
	MapIframe    = "map-iframe"
	AccessTitle  = "access-title"
	AccessList   = "access-list"

	TicketPhase    = "ticket-phase"
	TicketSubtitle = "ticket-subtitle"
	InfoList       = "info-list"
	InfoLabel      = "info-label"
	TicketLink     = "ticket-link"

	SocialLinks   = "social-links"
	SocialLink    = "social-link"
	SocialIcon    = "social-icon"
	SocialNote    = "social-note"
	SocialHashtag = "hashtag"

	FooterStyle = "footer"
)

const (
	md = "screen and (min-width: 768px)"
	lg = "screen and (min-width: 1024px)"

	shadowSm = "0 1px 2px 0 rgba(0, 0, 0, 0.05)"
	shadowMd = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)"
	shadowLg = "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)"

	cyan    = "#06B6D4"
	cyanDk  = "#0891B2"
	gray600 = "#4B5563"
	gray900 = "#111827"
	pill    = "linear-gradient(to right, #2DD4BF, #06B6D4)"
)

// Default returns the page stylesheet.
func Default() *Sheet {
	return &Sheet{
		Keyframes: []Keyframes{
			{Name: Wave, Stops: []Stop{
				{At: "0%", Decls: d("transform", "translateX(-50%) translateY(0%) scale(2, 1.5)")},
				{At: "50%", Decls: d("transform", "translateX(0%) translateY(5%) scale(2, 1.5)")},
				{At: "100%", Decls: d("transform", "translateX(-50%) translateY(0%) scale(2, 1.5)")},
			}},
			{Name: FloatAndFade, Stops: []Stop{
				{At: "0%", Decls: d("transform", "translateY(0) translateX(0) scale(0.5)", "opacity", "0")},
				{At: "25%", Decls: d("opacity", "0.8")},
				{At: "50%", Decls: d("transform", "translateY(-50px) translateX(20px) scale(1)", "opacity", "1")},
				{At: "75%", Decls: d("opacity", "0.8")},
				{At: "100%", Decls: d("transform", "translateY(-100px) translateX(-10px) scale(0.5)", "opacity", "0")},
			}},
		},
		Rules: rules(),
	}
}

func rules() []Rule {
	c := Class
	return []Rule{
		// Global
		{Selector: "*, *::before, *::after", Decls: d("box-sizing", "border-box")},
		{Selector: "[hidden]", Decls: d("display", "none !important")},
		{Selector: "body", Decls: d(
			"margin", "0",
			"font-family", "'Inter', sans-serif",
			"background", "linear-gradient(to bottom right, #81D4FA, #4FC3F7, #29B6F6)",
			"min-height", "100vh",
			"display", "flex",
			"justify-content", "center",
			"align-items", "flex-start",
			"padding-top", "4rem",
		)},
		{Selector: "a", Decls: d("text-decoration", "none")},
		{Selector: "h1, h2, h3, p, ul", Decls: d("margin-top", "0")},

		// Header
		{Selector: c(HeaderNav), Decls: d(
			"position", "fixed", "top", "0", "left", "0", "width", "100%",
			"background-color", "rgba(255, 255, 255, 0.98)",
			"box-shadow", "0 2px 10px rgba(0, 0, 0, 0.1)",
			"z-index", "1000", "padding", "0.5rem 2rem",
			"display", "flex", "justify-content", "space-between", "align-items", "center",
			"border-bottom-left-radius", "15px", "border-bottom-right-radius", "15px",
		)},
		{Selector: c(HeaderNav), Media: md, Decls: d("flex-direction", "row", "align-items", "center")},
		{Selector: c(HeaderLogo), Decls: d("font-size", "1.75rem", "font-weight", "bold", "color", cyan, "white-space", "nowrap")},
		{Selector: c(MenuToggle), Decls: d(
			"display", "block", "cursor", "pointer", "font-size", "1.8rem", "color", cyan, "padding", "0.5rem",
			"background", "none", "border", "0",
		)},
		{Selector: c(MenuToggle), Media: md, Decls: d("display", "none")},
		{Selector: c(MenuClose), Decls: d("text-align", "right", "width", "100%", "margin-bottom", "1rem")},
		{Selector: c(MenuClose), Media: md, Decls: d("display", "none")},
		{Selector: c(NavLinks), Decls: d(
			"display", "none", "position", "absolute", "top", "100%", "left", "0", "width", "100%",
			"background-color", "rgba(255, 255, 255, 0.98)",
			"box-shadow", "0 5px 15px rgba(0, 0, 0, 0.1)",
			"flex-direction", "column", "padding", "1rem 2rem",
			"border-bottom-left-radius", "15px", "border-bottom-right-radius", "15px", "gap", "0",
		)},
		{Selector: c(NavLinks) + c(Active), Decls: d("display", "flex")},
		{Selector: c(NavLinks), Media: md, Decls: d(
			"display", "flex !important", "position", "static", "flex-direction", "row",
			"box-shadow", "none", "padding", "0", "gap", "1.5rem", "border-radius", "0",
			"justify-content", "flex-end",
		)},
		{Selector: c(NavLinkItem), Decls: d(
			"display", "block", "color", gray600, "font-weight", "600", "padding", "1rem 0",
			"text-align", "center", "border-top", "1px solid #eee", "white-space", "nowrap",
			"transition", "color 0.2s ease-in-out",
		)},
		{Selector: c(NavLinkItem) + ":hover", Decls: d("color", cyanDk)},
		{Selector: c(NavLinkItem) + ":first-of-type", Decls: d("border-top", "none")},
		{Selector: c(NavLinkItem), Media: md, Decls: d("display", "inline-block", "border-top", "none !important", "padding", "0.75rem 0")},

		// Page panel
		{Selector: c(PagePanel), Decls: d(
			"width", "100%", "max-width", "56rem", "margin", "1rem", "padding", "2rem",
			"background-color", "rgba(255, 255, 255, 0.95)", "border-radius", "0.75rem",
			"box-shadow", "0 25px 50px -12px rgba(0, 0, 0, 0.25)", "overflow", "hidden",
		)},

		// Hero
		{Selector: c(HeroHeader), Decls: d(
			"text-align", "center", "margin-bottom", "2.5rem", "padding", "1.5rem",
			"border-radius", "0.75rem", "background", "linear-gradient(to bottom right, #22D3EE, #3B82F6)",
			"box-shadow", shadowLg, "position", "relative", "overflow", "hidden",
		)},
		{Selector: c(HeroContent), Decls: d("position", "relative", "z-index", "10")},
		{Selector: c(HeroTitle), Decls: d("font-size", "3rem", "font-weight", "800", "color", "#fff", "margin-bottom", "1rem", "line-height", "1.25")},
		{Selector: c(HeroTitle), Media: md, Decls: d("font-size", "3.75rem")},
		{Selector: c(HeroSubtitle), Decls: d("font-size", "1.25rem", "color", "#fff", "font-weight", "600", "margin-bottom", "1.5rem")},
		{Selector: c(HeroSubtitle), Media: md, Decls: d("font-size", "1.5rem")},
		{Selector: c(HeroButton), Decls: d(
			"display", "inline-block", "background", pill, "color", "#fff", "padding", "0.75rem 1.5rem",
			"border-radius", "9999px", "font-weight", "bold", "box-shadow", "0 4px 10px rgba(0, 0, 0, 0.1)",
			"transition", "transform 0.2s ease-in-out, box-shadow 0.2s ease-in-out",
		)},
		{Selector: c(HeroButton) + ":hover", Decls: d("transform", "scale(1.05)")},
		{Selector: c(WaveLayer), Decls: d(
			"position", "absolute", "bottom", "0", "left", "0", "width", "100%", "height", "33.333333%", "z-index", "0",
			"background", "linear-gradient(to right, rgba(0, 255, 255, 0.3), rgba(0, 191, 255, 0.3))",
			"border-radius", "50%", "animation", Wave+" 15s linear infinite",
		)},
		{Selector: c(WaveLayer2), Decls: d(
			"opacity", "0.75",
			"background", "linear-gradient(to right, rgba(0, 255, 255, 0.2), rgba(0, 191, 255, 0.2))",
			"animation", Wave+" 20s linear infinite reverse",
		)},
		{Selector: c(Particles), Decls: d("position", "absolute", "inset", "0", "z-index", "0", "pointer-events", "none")},
		{Selector: c(Particle), Decls: d(
			"position", "absolute", "background-color", "#fff", "border-radius", "50%", "opacity", "0",
			"animation", FloatAndFade+" 10s infinite ease-in-out", "box-shadow", "0 0 5px rgba(255, 255, 255, 0.8)",
		)},

		// Sections
		{Selector: c(SectionWrapper), Decls: d("margin-bottom", "2.5rem", "margin-top", "2rem")},
		{Selector: c(SectionTitle), Decls: d(
			"font-size", "1.875rem", "font-weight", "800", "color", "#fff", "padding", "1rem 1.5rem",
			"margin", "0", "position", "relative", "text-align", "center",
			"background", "linear-gradient(to right, #06B6D4, #2563EB)",
			"border-top-left-radius", "0.75rem", "border-top-right-radius", "0.75rem", "box-shadow", shadowMd,
		)},
		{Selector: c(SectionBody), Decls: d(
			"padding", "1.5rem", "background-color", "#fff",
			"border-bottom-left-radius", "0.75rem", "border-bottom-right-radius", "0.75rem",
			"box-shadow", "inset 0 2px 4px 0 rgba(0, 0, 0, 0.05)",
		)},
		{Selector: c(SectionBody) + c(BgWhite), Decls: d("background-color", "#fff")},
		{Selector: c(SectionBody) + c(BgBlue), Decls: d("background-color", "#DBEAFE")},
		{Selector: c(SectionBody) + c(BgGreen), Decls: d("background-color", "#D1FAE5")},
		{Selector: c(TextBody), Decls: d("color", gray600, "line-height", "1.625", "font-size", "1.125rem", "text-align", "center")},
		{Selector: c(TextHighlight), Decls: d("font-weight", "bold", "color", cyanDk)},

		// Event details
		{Selector: c(Grid), Decls: d("display", "grid", "grid-template-columns", "repeat(1, minmax(0, 1fr))", "gap", "1.5rem", "font-size", "1.125rem")},
		{Selector: c(Grid), Media: md, Decls: d("grid-template-columns", "repeat(2, minmax(0, 1fr))")},
		{Selector: c(Grid) + c(Grid3), Media: lg, Decls: d("grid-template-columns", "repeat(3, minmax(0, 1fr))")},
		{Selector: c(DetailItem), Decls: d(
			"display", "flex", "align-items", "center", "padding", "1rem", "background-color", "#fff",
			"border-radius", "0.5rem", "box-shadow", shadowSm,
		)},
		{Selector: c(DetailIcon), Decls: d("color", cyan, "font-size", "1.5rem", "margin-right", "1rem")},
		{Selector: c(DetailLabel), Decls: d("font-weight", "600", "color", "#374151", "margin", "0")},
		{Selector: c(DetailText), Decls: d("color", gray600, "margin", "0")},

		// Artists
		{Selector: c(ArtistCard), Decls: d(
			"background-color", "#F9FAFB", "border-radius", "0.75rem", "padding", "1.5rem",
			"box-shadow", shadowMd, "transition", "transform 0.2s ease-in-out",
		)},
		{Selector: c(ArtistCard) + ":hover", Decls: d("transform", "scale(1.05)")},
		{Selector: c(ArtistName), Decls: d("font-size", "1.25rem", "font-weight", "bold", "color", gray900, "margin-bottom", "0.5rem")},
		{Selector: c(ArtistDescription), Decls: d("color", gray600, "margin", "0")},
		{Selector: c(ArtistMore), Decls: d("text-align", "center", "color", gray600, "margin-top", "1.5rem", "font-size", "0.875rem")},

		// Venue
		{Selector: c(VenueAddress), Decls: d("margin-bottom", "1rem")},
		{Selector: c(MapFrame), Decls: d(
			"position", "relative", "width", "100%", "max-width", "32rem", "margin", "0 auto 1.5rem",
			"padding-bottom", "56.25%",
		)},
		{Selector: c(MapIframe), Decls: d(
			"position", "absolute", "top", "0", "left", "0", "width", "100%", "height", "100%", "border", "0",
			"border-radius", "0.5rem", "box-shadow", shadowMd,
		)},
		{Selector: c(AccessTitle), Decls: d("font-weight", "bold", "color", gray900, "margin-bottom", "0.5rem")},
		{Selector: c(AccessList), Decls: d("list-style-type", "disc", "list-style-position", "inside", "text-align", "left", "margin", "0 auto", "max-width", "28rem", "padding", "0")},

		// Tickets and notes
		{Selector: c(TicketPhase), Decls: d("margin-bottom", "2rem")},
		{Selector: c(TicketPhase) + ":last-child", Decls: d("margin-bottom", "0")},
		{Selector: c(TicketSubtitle), Decls: d("font-size", "1.5rem", "font-weight", "bold", "color", gray900, "margin-bottom", "1rem", "text-align", "center")},
		{Selector: c(InfoList), Decls: d("list-style-type", "disc", "list-style-position", "inside", "color", gray600, "font-size", "1.125rem", "padding", "0", "margin", "0")},
		{Selector: c(InfoList) + " > li", Decls: d("margin-bottom", "0.5rem")},
		{Selector: c(InfoLabel), Decls: d("font-weight", "600")},
		{Selector: c(TicketLink), Decls: d("color", "#2563EB")},
		{Selector: c(TicketLink) + ":hover", Decls: d("text-decoration", "underline")},

		// Social
		{Selector: c(SocialLinks), Decls: d("display", "flex", "flex-wrap", "wrap", "justify-content", "center", "gap", "1.5rem", "font-size", "1.125rem")},
		{Selector: c(SocialLink), Decls: d(
			"display", "flex", "align-items", "center", "background", pill, "color", "#fff",
			"padding", "0.75rem 1.5rem", "border-radius", "9999px", "font-weight", "bold",
			"box-shadow", "0 4px 10px rgba(0, 0, 0, 0.1)", "transition", "transform 0.2s ease-in-out",
		)},
		{Selector: c(SocialLink) + ":hover", Decls: d("transform", "scale(1.05)")},
		{Selector: c(SocialIcon), Decls: d("font-size", "1.5rem", "margin-right", "0.5rem")},
		{Selector: c(SocialNote), Decls: d("margin-top", "1.5rem")},
		{Selector: c(SocialHashtag), Decls: d("font-weight", "bold", "color", cyan)},

		// Footer
		{Selector: c(FooterStyle), Decls: d("text-align", "center", "color", gray600, "margin-top", "2.5rem", "font-size", "0.875rem")},
	}
}
