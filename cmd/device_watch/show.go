package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonathan/device-watch/internal/catalog"
	"github.com/jonathan/device-watch/internal/config"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the last accepted snapshot as a table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return show(cmd.Context(), settings, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func show(ctx context.Context, cfg *config.Config, out io.Writer) error {
	store, release, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	text, err := store.Load(ctx)
	if err != nil {
		return err
	}

	devices := catalog.ParseSnapshot(text)
	if len(devices) == 0 {
		_, err := fmt.Fprintln(out, "No snapshot saved yet.")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Year", "Device", "Price", "URL"})
	for _, d := range devices {
		t.AppendRow(table.Row{d.Year, d.Name, fmt.Sprintf("$%d", d.StartPrice), d.URL})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d devices", len(devices)), "", ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
