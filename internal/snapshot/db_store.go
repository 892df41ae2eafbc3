package snapshot

import (
	"context"

	"github.com/jonathan/device-watch/internal/db"
)

// History is the subset of the database used by DBStore.
type History interface {
	LatestSnapshot(ctx context.Context, sourceURL string) (*db.SnapshotRecord, error)
	SaveSnapshot(ctx context.Context, sourceURL, content string) (*db.SnapshotRecord, error)
}

// DBStore keeps every accepted snapshot in PostgreSQL and loads the newest one.
type DBStore struct {
	history   History
	sourceURL string
}

// NewDBStore creates a DBStore scoped to one source URL.
func NewDBStore(history History, sourceURL string) *DBStore {
	return &DBStore{history: history, sourceURL: sourceURL}
}

// Load returns the newest accepted snapshot, or "" when there is none.
func (s *DBStore) Load(ctx context.Context) (string, error) {
	rec, err := s.history.LatestSnapshot(ctx, s.sourceURL)
	if err != nil {
		return "", &PersistenceError{Path: s.sourceURL, Message: "failed to load snapshot history", Cause: err}
	}
	if rec == nil {
		return "", nil
	}
	return rec.Content, nil
}

// Save appends text to the history.
func (s *DBStore) Save(ctx context.Context, text string) error {
	if _, err := s.history.SaveSnapshot(ctx, s.sourceURL, text); err != nil {
		return &PersistenceError{Path: s.sourceURL, Message: "failed to save snapshot history", Cause: err}
	}
	return nil
}
