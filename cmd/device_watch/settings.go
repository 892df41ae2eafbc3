package main

import (
	"fmt"
	"time"

	"github.com/jonathan/device-watch/internal/config"
	"github.com/spf13/cobra"
)

// loadSettings loads the config file and environment, then applies the flags
// the user set explicitly.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.SourceURL = sourceURL
	}
	if flags.Changed("snapshot") {
		cfg.SnapshotPath = snapshotPath
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = databaseURL
	}
	if flags.Changed("browser") {
		cfg.UseBrowser = useBrowser
	}
	if flags.Changed("timeout") {
		d, err := time.ParseDuration(fetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if flags.Changed("interval") {
		cfg.Interval = watchInterval
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("no-color") {
		cfg.Color = !noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
