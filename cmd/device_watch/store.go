package main

import (
	"context"
	"fmt"

	"github.com/jonathan/device-watch/internal/catalog"
	"github.com/jonathan/device-watch/internal/config"
	"github.com/jonathan/device-watch/internal/db"
	"github.com/jonathan/device-watch/internal/fetch"
	"github.com/jonathan/device-watch/internal/snapshot"
)

// openStore returns the PostgreSQL history store when a database is
// configured and the snapshot file otherwise. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (snapshot.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return snapshot.NewFileStore(cfg.SnapshotPath), func() {}, nil
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return snapshot.NewDBStore(database, cfg.SourceURL), database.Close, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// newFetcher builds the page fetcher. The browser is only used when the HTTP
// body lacks the embedded device payload.
func newFetcher(cfg *config.Config) *fetch.Fetcher {
	f := fetch.NewFetcher(&fetch.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}, cfg.UseBrowser)
	f.NeedsBrowser = func(html string) bool { return !catalog.HasPayload(html) }
	return f
}
