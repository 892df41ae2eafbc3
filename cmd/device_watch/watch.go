package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/device-watch/internal/config"
	"github.com/jonathan/device-watch/internal/confirm"
	"github.com/jonathan/device-watch/internal/monitor"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the catalog page and confirm changes interactively",
	Long: "Fetch the catalog page every interval, compare the extracted device list with the last accepted " +
		"snapshot and, when it changed, show a diff and wait for (O)verwrite, (I)gnore or (Q)uit.",
	RunE: runWatch,
}

var (
	watchInterval time.Duration
	watchOnce     bool
	watchAnswer   string
)

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", config.DefaultInterval, "Wait between cycles (overrides interval)")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "Run a single cycle and exit")
	watchCmd.Flags().StringVar(&watchAnswer, "answer", "", "Answer every prompt with this key (o, i or q) instead of reading the terminal")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	keys, err := keySource(watchAnswer)
	if err != nil {
		return err
	}

	maxCycles := 0
	if watchOnce {
		maxCycles = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = watch(ctx, settings, keys, cmd.OutOrStdout(), maxCycles)
	if errors.Is(err, context.Canceled) {
		slog.Info("interrupted")
		return nil
	}
	return err
}

// keySource reads the terminal unless a fixed answer was given.
func keySource(answer string) (confirm.KeySource, error) {
	if answer == "" {
		return confirm.NewTerminalKeys(os.Stdin), nil
	}
	keys := []rune(answer)
	if len(keys) != 1 {
		return nil, fmt.Errorf("--answer must be a single key, got %q", answer)
	}
	if _, ok := confirm.DecisionForKey(keys[0]); !ok {
		return nil, fmt.Errorf("--answer must be one of o, i or q, got %q", answer)
	}
	return confirm.NewRepeatingKeys(keys[0]), nil
}

func watch(ctx context.Context, cfg *config.Config, keys confirm.KeySource, out io.Writer, maxCycles int) error {
	store, release, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	m := monitor.New(
		monitor.Config{
			SourceURL: cfg.SourceURL,
			Interval:  cfg.Interval,
			MaxCycles: maxCycles,
		},
		newFetcher(cfg),
		store,
		confirm.New(keys, out, confirm.Options{Color: cfg.Color}),
		monitor.Options{Out: out, Logger: slog.Default()},
	)
	return m.Run(ctx)
}
