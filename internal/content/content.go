// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content holds the copy of the festival page as data. The default
// copy is embedded in the binary as YAML; editors can override it with a
// file or with a revision stored in PostgreSQL.
package content

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed festival.yaml
var embedded []byte

// ErrInvalid is returned when a document parses but breaks a content rule.
var ErrInvalid = errors.New("invalid festival content")

// Festival is the complete copy of the page.
type Festival struct {
	Brand    []string `yaml:"brand"`
	Year     int      `yaml:"year"`
	Hero     Hero     `yaml:"hero"`
	About    About    `yaml:"about"`
	Schedule Schedule `yaml:"schedule"`
	Lineup   Lineup   `yaml:"lineup"`
	Venue    Venue    `yaml:"venue"`
	Tickets  Tickets  `yaml:"tickets"`
	Notes    Notes    `yaml:"notes"`
	Social   Social   `yaml:"social"`
	Footer   string   `yaml:"footer"`

	raw []byte
}

type Hero struct {
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type About struct {
	Title     string `yaml:"title"`
	Body      string `yaml:"body"`
	Highlight string `yaml:"highlight"`
	Closing   string `yaml:"closing"`
}

// Schedule carries the event date, times and prices. Date is an ISO date
// used for structured data; DateLabel is what visitors read.
type Schedule struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	DateLabel string `yaml:"date_label"`
	Doors     string `yaml:"doors"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Venue     string `yaml:"venue"`
	Price     Price  `yaml:"price"`
}

// Price amounts are whole yen.
type Price struct {
	Advance int64 `yaml:"advance"`
	Door    int64 `yaml:"door"`
	Drink   int64 `yaml:"drink"`
}

type Artist struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Lineup struct {
	Title   string   `yaml:"title"`
	Artists []Artist `yaml:"artists"`
	More    string   `yaml:"more"`
}

type Venue struct {
	Title       string   `yaml:"title"`
	Name        string   `yaml:"name"`
	PostalCode  string   `yaml:"postal_code"`
	Region      string   `yaml:"region"`
	Locality    string   `yaml:"locality"`
	Street      string   `yaml:"street"`
	MapURL      string   `yaml:"map_url"`
	AccessTitle string   `yaml:"access_title"`
	Access      []string `yaml:"access"`
}

// Address returns the postal address line as printed on the page.
func (v Venue) Address() string {
	return "〒" + v.PostalCode + " " + v.Region + v.Locality + v.Street
}

type Tickets struct {
	Title  string        `yaml:"title"`
	Phases []TicketPhase `yaml:"phases"`
}

// TicketPhase is one sales window, e.g. the lottery presale.
type TicketPhase struct {
	Title string      `yaml:"title"`
	Rows  []LabelText `yaml:"rows"`
	Link  *TicketLink `yaml:"link,omitempty"`
	Notes []string    `yaml:"notes"`
}

type LabelText struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type TicketLink struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
	Href  string `yaml:"href"`
}

type Notes struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type SocialLink struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Social struct {
	Title       string       `yaml:"title"`
	Links       []SocialLink `yaml:"links"`
	Hashtag     string       `yaml:"hashtag"`
	HashtagLead string       `yaml:"hashtag_lead"`
	HashtagTail string       `yaml:"hashtag_tail"`
}

// DetailItem is one tile of the event details grid.
type DetailItem struct {
	Icon  string
	Label string
	Text  string
}

// Embedded returns the copy compiled into the binary.
func Embedded() (*Festival, error) {
	return Parse(embedded)
}

// FromFile reads and validates a YAML document from disk.
func FromFile(path string) (*Festival, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document and validates it. Unknown keys are rejected
// so that typos in hand-edited files surface instead of silently vanishing.
func Parse(data []byte) (*Festival, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Festival
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.raw = append([]byte(nil), data...)
	return &f, nil
}

// Validate checks the rules the page relies on.
func (f *Festival) Validate() error {
	var problems []string

	if strings.TrimSpace(strings.Join(f.Brand, "")) == "" {
		problems = append(problems, "brand must not be empty")
	}
	if len(f.Lineup.Artists) == 0 {
		problems = append(problems, "lineup must list at least one artist")
	}
	for i, a := range f.Lineup.Artists {
		if strings.TrimSpace(a.Name) == "" {
			problems = append(problems, fmt.Sprintf("artist %d has no name", i+1))
		}
		if strings.TrimSpace(a.Description) == "" {
			problems = append(problems, fmt.Sprintf("artist %d has no description", i+1))
		}
	}
	if u, err := url.Parse(f.Venue.MapURL); err != nil || u.Scheme != "https" || u.Host == "" {
		problems = append(problems, "venue map_url must be an absolute https URL")
	}
	if f.Schedule.Date != "" {
		if _, err := time.Parse(time.DateOnly, f.Schedule.Date); err != nil {
			problems = append(problems, "schedule date must be YYYY-MM-DD")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Fingerprint is a short hash of the source document. It changes whenever
// the copy changes and is used to key cached renders.
func (f *Festival) Fingerprint() string {
	sum := sha256.Sum256(f.raw)
	return hex.EncodeToString(sum[:6])
}

// Raw returns the YAML the document was parsed from.
func (f *Festival) Raw() []byte {
	return f.raw
}

// Title is the brand as a single line, e.g. "夏の! 高専FES!!".
func (f *Festival) Title() string {
	return strings.Join(f.Brand, " ")
}

// Details builds the four tiles of the event details grid.
func (f *Festival) Details() []DetailItem {
	s := f.Schedule
	p := message.NewPrinter(language.Japanese)
	return []DetailItem{
		{Icon: "📅", Label: "日程:", Text: s.DateLabel},
		{Icon: "⏰", Label: "時間:", Text: fmt.Sprintf("開場 %s / 開演 %s / 終演 %s (予定)", s.Doors, s.Start, s.End)},
		{Icon: "📍", Label: "会場:", Text: s.Venue},
		{Icon: "🎫", Label: "チケット:", Text: p.Sprintf("前売り: ¥%d / 当日: ¥%d (ドリンク代別途 ¥%d)", s.Price.Advance, s.Price.Door, s.Price.Drink)},
	}
}

// Copyright is the footer line.
func (f *Festival) Copyright() string {
	return fmt.Sprintf("© %d %s. %s", f.Year, f.Title(), f.Footer)
}
