package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/device-watch/internal/catalog"
	"github.com/jonathan/device-watch/internal/config"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Fetch the catalog page once and print the extracted snapshot",
	Long:  "Fetch the catalog page once and print the snapshot lines that watch would compare. Nothing is saved.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return extract(cmd.Context(), settings, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(ctx context.Context, cfg *config.Config, out io.Writer) error {
	page, err := newFetcher(cfg).Fetch(ctx, cfg.SourceURL)
	if err != nil {
		return err
	}

	text, err := catalog.Extract(page)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(out, text); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
