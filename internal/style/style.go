// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package style holds the page stylesheet as a table of rules and keyframes
// and writes it out as CSS. The browser evaluates the animations; nothing in
// this package runs them.
package style

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decl is a single "property: value" pair.
type Decl struct {
	Prop  string
	Value string
}

// Rule applies declarations to a selector, optionally inside a media query.
type Rule struct {
	Selector string
	Media    string // e.g. "screen and (min-width: 768px)"; empty for none
	Decls    []Decl
}

// Stop is one keyframe selector such as "0%" or "50%".
type Stop struct {
	At    string
	Decls []Decl
}

// Keyframes is a named @keyframes block.
type Keyframes struct {
	Name  string
	Stops []Stop
}

// Sheet is an ordered stylesheet. Order matters for the cascade, so rules
// are written exactly in the order they were declared.
type Sheet struct {
	Keyframes []Keyframes
	Rules     []Rule
}

// d builds declarations from alternating property/value arguments.
func d(kv ...string) []Decl {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("style: odd number of declaration arguments: %q", kv))
	}
	out := make([]Decl, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, Decl{Prop: kv[i], Value: kv[i+1]})
	}
	return out
}

// Class returns the selector for a class name.
func Class(name string) string {
	return "." + name
}

// WriteTo writes the sheet as CSS. Keyframes come first so rules can refer
// to them by name.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	for _, kf := range s.Keyframes {
		fmt.Fprintf(cw, "@keyframes %s {\n", kf.Name)
		for _, st := range kf.Stops {
			fmt.Fprintf(cw, "  %s { %s }\n", st.At, inline(st.Decls))
		}
		io.WriteString(cw, "}\n")
	}

	for _, r := range s.Rules {
		indent := ""
		if r.Media != "" {
			fmt.Fprintf(cw, "@media %s {\n", r.Media)
			indent = "  "
		}
		fmt.Fprintf(cw, "%s%s {\n", indent, r.Selector)
		for _, decl := range r.Decls {
			fmt.Fprintf(cw, "%s  %s: %s;\n", indent, decl.Prop, decl.Value)
		}
		fmt.Fprintf(cw, "%s}\n", indent)
		if r.Media != "" {
			io.WriteString(cw, "}\n")
		}
	}

	if err := cw.w.Flush(); err != nil && cw.err == nil {
		cw.err = err
	}
	return cw.n, cw.err
}

// String renders the sheet to a string.
func (s *Sheet) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// Selectors lists every selector in declaration order, duplicates included.
func (s *Sheet) Selectors() []string {
	out := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		out = append(out, r.Selector)
	}
	return out
}

func inline(decls []Decl) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.Prop+": "+decl.Value+";")
	}
	return strings.Join(parts, " ")
}

// countingWriter tracks bytes written and keeps the first error.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
