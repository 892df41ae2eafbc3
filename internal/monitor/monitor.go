// Package monitor runs the fetch, compare, confirm and persist cycle.
package monitor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/device-watch/internal/catalog"
	"github.com/jonathan/device-watch/internal/diff"
	"github.com/jonathan/device-watch/internal/snapshot"
	"github.com/jonathan/device-watch/internal/types"
)

// DefaultInterval is the wait between cycles.
const DefaultInterval = 5 * time.Minute

// Status lines printed to the operator.
const (
	MsgUnchanged   = "Results are the same."
	MsgOverwritten = "Overwriting and continuing."
	MsgIgnored     = "Ignoring results and continuing."
)

// Fetcher returns the raw page text for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Confirmer asks the operator what to do with a change.
type Confirmer interface {
	Confirm(ctx context.Context, changes []types.Change) (types.Decision, error)
}

// Config holds the values a cycle depends on.
type Config struct {
	SourceURL string
	Interval  time.Duration
	// MaxCycles stops Run after that many completed cycles. Zero means no limit.
	MaxCycles int
}

// Options carries optional collaborators.
type Options struct {
	Out    io.Writer
	Logger *slog.Logger
	// Sleep waits between cycles. Defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Monitor drives the poll loop. It is not safe for concurrent use.
type Monitor struct {
	cfg       Config
	fetcher   Fetcher
	store     snapshot.Store
	confirmer Confirmer
	out       io.Writer
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
	cycles    int
}

// New creates a Monitor.
func New(cfg Config, fetcher Fetcher, store snapshot.Store, confirmer Confirmer, opts Options) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}
	return &Monitor{
		cfg:       cfg,
		fetcher:   fetcher,
		store:     store,
		confirmer: confirmer,
		out:       opts.Out,
		logger:    opts.Logger,
		sleep:     opts.Sleep,
	}
}

// Cycles returns how many cycles have completed without quitting.
func (m *Monitor) Cycles() int {
	return m.cycles
}

// RunCycle fetches the page once, compares it with the stored snapshot and,
// when they differ, asks the operator. Fetch, extraction and persistence
// errors are returned as is; the caller is expected to stop.
func (m *Monitor) RunCycle(ctx context.Context) (types.Outcome, error) {
	log := m.logger.With("cycle_id", uuid.New().String(), "cycle", m.cycles+1)

	page, err := m.fetcher.Fetch(ctx, m.cfg.SourceURL)
	if err != nil {
		return 0, err
	}

	newText, err := catalog.Extract(page)
	if err != nil {
		return 0, err
	}

	oldText, err := m.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	if newText == oldText {
		log.Debug("snapshot unchanged", "bytes", len(newText))
		m.println(MsgUnchanged)
		return types.OutcomeUnchanged, nil
	}

	changes := diff.Lines(oldText, newText)
	summary := diff.Summarize(changes)
	log.Info("snapshot changed", "inserted", summary.Inserted, "deleted", summary.Deleted, "equal", summary.Equal)

	decision, err := m.confirmer.Confirm(ctx, changes)
	if err != nil {
		return 0, err
	}
	log.Info("operator decision", "decision", decision.String())

	switch decision {
	case types.DecisionOverwrite:
		if err := m.store.Save(ctx, newText); err != nil {
			return 0, err
		}
		m.println(MsgOverwritten)
		return types.OutcomeOverwritten, nil
	case types.DecisionIgnore:
		m.println(MsgIgnored)
		return types.OutcomeIgnored, nil
	case types.DecisionQuit:
		return types.OutcomeQuit, nil
	default:
		return 0, fmt.Errorf("unexpected decision %d", decision)
	}
}

// Run repeats RunCycle until the operator quits, MaxCycles is reached, a
// cycle fails, or ctx is cancelled. Quitting returns nil.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info("watching catalog", "url", m.cfg.SourceURL, "interval", m.cfg.Interval)

	for {
		outcome, err := m.RunCycle(ctx)
		if err != nil {
			return err
		}
		if outcome == types.OutcomeQuit {
			m.logger.Info("operator quit", "cycles", m.cycles)
			return nil
		}

		m.cycles++
		if m.cfg.MaxCycles > 0 && m.cycles >= m.cfg.MaxCycles {
			return nil
		}

		m.println(fmt.Sprintf("Attempted %d times; waiting %d seconds until next request.",
			m.cycles, int(m.cfg.Interval.Seconds())))
		if err := m.sleep(ctx, m.cfg.Interval); err != nil {
			return err
		}
	}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (m *Monitor) println(line string) {
	fmt.Fprintln(m.out, line)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
