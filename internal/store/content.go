// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists festival content revisions in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kosenfes/internal/content"
)

// Revision is one stored version of the festival YAML.
type Revision struct {
	ID          int64
	Body        []byte
	Fingerprint string
	Note        string
	CreatedAt   time.Time
}

// ContentStore reads and appends festival content revisions. Revisions are
// never updated in place; the newest row wins.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Latest returns the body of the newest revision, or nil when none exists.
// It satisfies content.RevisionSource.
func (s *ContentStore) Latest(ctx context.Context) ([]byte, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT body FROM festival_content
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest festival content: %w", err)
	}
	return []byte(body), nil
}

// Save validates body and stores it as the newest revision. Documents that
// fail content.Parse are rejected before touching the database.
func (s *ContentStore) Save(ctx context.Context, body []byte, note string) (*Revision, error) {
	f, err := content.Parse(body)
	if err != nil {
		return nil, err
	}

	rev := &Revision{Body: body, Fingerprint: f.Fingerprint(), Note: note}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO festival_content (body, fingerprint, note)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, string(body), rev.Fingerprint, note).Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert festival content: %w", err)
	}
	return rev, nil
}

// History lists revisions newest first without their bodies.
func (s *ContentStore) History(ctx context.Context, limit int) ([]Revision, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fingerprint, note, created_at
		FROM festival_content
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list festival content: %w", err)
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.Fingerprint, &r.Note, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan festival content: %w", err)
		}
		revs = append(revs, r)
	}
	return revs, rows.Err()
}
