// Package main provides the device_watch command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/device-watch/internal/config"
	"github.com/jonathan/device-watch/internal/observability"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "device_watch",
	Short: "Watch a product catalog page for changes",
	Long: "device_watch periodically fetches a product comparison page, extracts the device list embedded in it " +
		"and asks before replacing the last accepted snapshot when the list changes.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath   string
	sourceURL    string
	snapshotPath string
	databaseURL  string
	useBrowser   bool
	fetchTimeout string
	verbose      bool
	noColor      bool
)

// settings is the merged configuration for the running command.
var settings *config.Config

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flags.StringVar(&sourceURL, "url", "", "Catalog page to watch (overrides source_url)")
	flags.StringVar(&snapshotPath, "snapshot", "", "Snapshot file (overrides snapshot_path)")
	flags.StringVar(&databaseURL, "db-url", "", "PostgreSQL URL for snapshot history (overrides database_url)")
	flags.BoolVar(&useBrowser, "browser", false, "Re-render the page in headless Chrome when the payload is missing")
	flags.StringVar(&fetchTimeout, "timeout", "", "Fetch timeout, e.g. 30s (overrides timeout)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print debug logs")
	flags.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	settings = cfg
	observability.Setup(cfg.Verbose, cfg.Color)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
