package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonathan/device-watch/internal/config"
	"github.com/jonathan/device-watch/internal/db"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List accepted snapshots stored in PostgreSQL",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return history(cmd.Context(), settings, historyLimit, cmd.OutOrStdout())
	},
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of snapshots to list")

	rootCmd.AddCommand(historyCmd)
}

func history(ctx context.Context, cfg *config.Config, limit int, out io.Writer) error {
	if cfg.DatabaseURL == "" {
		return errors.New("history requires a database (set --db-url or DEVICE_WATCH_DATABASE_URL)")
	}
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", limit)
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	records, err := database.ListSnapshots(ctx, cfg.SourceURL, limit)
	if err != nil {
		return err
	}
	renderHistory(out, records)
	return nil
}

func renderHistory(out io.Writer, records []db.SnapshotRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Accepted", "Devices", "ID"})
	for _, r := range records {
		t.AppendRow(table.Row{r.AcceptedAt.Local().Format(time.DateTime), r.LineCount, r.ID.String()})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
