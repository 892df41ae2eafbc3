package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SnapshotRecord is one accepted snapshot in the history table.
type SnapshotRecord struct {
	ID         uuid.UUID `json:"id"`
	SourceURL  string    `json:"source_url"`
	Content    string    `json:"content"`
	LineCount  int       `json:"line_count"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// CountLines returns the number of non-empty display lines in a snapshot.
func CountLines(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			n++
		}
	}
	return n
}

// SaveSnapshot appends an accepted snapshot for sourceURL to the history.
func (db *DB) SaveSnapshot(ctx context.Context, sourceURL, content string) (*SnapshotRecord, error) {
	rec := &SnapshotRecord{
		ID:        uuid.New(),
		SourceURL: sourceURL,
		Content:   content,
		LineCount: CountLines(content),
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO snapshots (id, source_url, content, line_count)
		 VALUES ($1, $2, $3, $4)
		 RETURNING accepted_at`,
		rec.ID, rec.SourceURL, rec.Content, rec.LineCount,
	).Scan(&rec.AcceptedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return rec, nil
}

// LatestSnapshot returns the most recently accepted snapshot for sourceURL,
// or nil when none has been accepted yet.
func (db *DB) LatestSnapshot(ctx context.Context, sourceURL string) (*SnapshotRecord, error) {
	var rec SnapshotRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, source_url, content, line_count, accepted_at
		 FROM snapshots WHERE source_url = $1
		 ORDER BY accepted_at DESC LIMIT 1`,
		sourceURL,
	).Scan(&rec.ID, &rec.SourceURL, &rec.Content, &rec.LineCount, &rec.AcceptedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &rec, nil
}

// ListSnapshots returns up to limit accepted snapshots for sourceURL, newest first.
func (db *DB) ListSnapshots(ctx context.Context, sourceURL string, limit int) ([]SnapshotRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, source_url, content, line_count, accepted_at
		 FROM snapshots WHERE source_url = $1
		 ORDER BY accepted_at DESC LIMIT $2`,
		sourceURL, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.Content, &rec.LineCount, &rec.AcceptedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return records, nil
}
