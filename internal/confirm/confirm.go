// Package confirm asks the operator what to do with a detected change.
package confirm

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/device-watch/internal/diff"
	"github.com/jonathan/device-watch/internal/types"
)

const (
	// Banner is printed before the diff.
	Banner = "New results detected!"
	// Prompt lists the accepted keys.
	Prompt = "(O)verwrite, (I)gnore, (Q)uit?"
	// DefaultPollInterval bounds each wait for a key press.
	DefaultPollInterval = 50 * time.Millisecond
)

// KeySource delivers single key presses.
type KeySource interface {
	// Begin prepares the source for reading, e.g. switches the terminal to raw mode.
	Begin() error
	// Poll waits at most timeout for a key. ok is false when no key arrived.
	Poll(ctx context.Context, timeout time.Duration) (key rune, ok bool, err error)
	// End undoes Begin.
	End() error
}

// Options configures a Confirmer.
type Options struct {
	Color        bool
	PollInterval time.Duration
}

// Confirmer renders a diff and blocks until the operator picks a decision.
type Confirmer struct {
	keys KeySource
	out  io.Writer
	opts Options
}

// New creates a Confirmer that writes to out and reads from keys.
func New(keys KeySource, out io.Writer, opts Options) *Confirmer {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Confirmer{keys: keys, out: out, opts: opts}
}

// DecisionForKey maps a key press to a decision, ignoring case.
func DecisionForKey(key rune) (types.Decision, bool) {
	switch key {
	case 'o', 'O':
		return types.DecisionOverwrite, true
	case 'i', 'I':
		return types.DecisionIgnore, true
	case 'q', 'Q':
		return types.DecisionQuit, true
	default:
		return 0, false
	}
}

// Confirm prints the diff and the prompt, then polls for keys until one of
// o, i or q is pressed. There is no timeout; only ctx cancellation or a key
// source failure ends the wait early.
func (c *Confirmer) Confirm(ctx context.Context, changes []types.Change) (types.Decision, error) {
	if _, err := fmt.Fprintln(c.out, Banner); err != nil {
		return 0, fmt.Errorf("failed to write banner: %w", err)
	}
	if err := diff.Render(c.out, changes, c.opts.Color); err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(c.out, Prompt); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	if err := c.keys.Begin(); err != nil {
		return 0, fmt.Errorf("failed to prepare key input: %w", err)
	}
	defer func() { _ = c.keys.End() }()

	for {
		key, ok, err := c.keys.Poll(ctx, c.opts.PollInterval)
		if err != nil {
			return 0, fmt.Errorf("failed to read key: %w", err)
		}
		if !ok {
			continue
		}
		if decision, ok := DecisionForKey(key); ok {
			return decision, nil
		}
	}
}
