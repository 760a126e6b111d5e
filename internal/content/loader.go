// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"log/slog"
)

// RevisionSource yields the newest stored YAML document, or nil when no
// revision has been saved yet.
type RevisionSource interface {
	Latest(ctx context.Context) ([]byte, error)
}

// Loader picks the copy to serve: the newest stored revision, then the
// override file, then the embedded default.
type Loader struct {
	Revisions RevisionSource // optional
	File      string         // optional
}

// Load resolves the festival copy. A stored revision that no longer
// validates is an error rather than a silent fallback, so a broken edit is
// noticed at startup.
func (l Loader) Load(ctx context.Context) (*Festival, error) {
	if l.Revisions != nil {
		body, err := l.Revisions.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("latest content revision: %w", err)
		}
		if body != nil {
			f, err := Parse(body)
			if err != nil {
				return nil, fmt.Errorf("stored revision: %w", err)
			}
			slog.Info("content loaded", "source", "database", "fingerprint", f.Fingerprint())
			return f, nil
		}
	}

	if l.File != "" {
		f, err := FromFile(l.File)
		if err != nil {
			return nil, err
		}
		slog.Info("content loaded", "source", "file", "path", l.File, "fingerprint", f.Fingerprint())
		return f, nil
	}

	f, err := Embedded()
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	slog.Info("content loaded", "source", "embedded", "fingerprint", f.Fingerprint())
	return f, nil
}
