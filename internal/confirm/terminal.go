package confirm

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// TerminalKeys reads key presses from a terminal. A single goroutine reads
// the file and feeds a channel; Poll waits on that channel with a bound.
type TerminalKeys struct {
	in    *os.File
	keys  chan rune
	err   error // set before keys is closed
	start sync.Once
	state *term.State
	// settle is how long Begin waits for already typed input to reach keys.
	settle time.Duration
}

// DefaultSettle bounds each wait for pending input while Begin discards it.
const DefaultSettle = 25 * time.Millisecond

const maxSettles = 8

// NewTerminalKeys creates a key source over in, normally os.Stdin.
func NewTerminalKeys(in *os.File) *TerminalKeys {
	return &TerminalKeys{in: in, keys: make(chan rune, 16), settle: DefaultSettle}
}

func (t *TerminalKeys) read() {
	r := bufio.NewReader(t.in)
	for {
		key, _, err := r.ReadRune()
		if err != nil {
			t.err = err
			close(t.keys)
			return
		}
		t.keys <- key
	}
}

// Begin discards keys typed before the prompt and puts the terminal in raw
// mode so single presses arrive without Enter. Non-terminal input is read as is.
func (t *TerminalKeys) Begin() error {
	t.start.Do(func() { go t.read() })

	fd := int(t.in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		t.state = state
		// Switching modes keeps the kernel queue, including a partial line
		// typed while the terminal was still canonical.
		if err := flushInput(fd); err != nil {
			_ = t.End()
			return fmt.Errorf("failed to discard pending input: %w", err)
		}
	}

	t.discardPending()
	return nil
}

// Poll waits up to timeout for the next key.
func (t *TerminalKeys) Poll(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, false, ctx.Err()
	case key, open := <-t.keys:
		if !open {
			return 0, false, t.err
		}
		return key, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}

// End restores the terminal state saved by Begin.
func (t *TerminalKeys) End() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// discardPending drops keys until the reader has been quiet for one settle
// period, giving up after maxSettles periods so a held key cannot stall the
// prompt. Bytes the reader goroutine picked up before the prompt are dropped
// here, as are bytes still in a pipe or file.
func (t *TerminalKeys) discardPending() {
	deadline := time.Now().Add(maxSettles * t.settle)
	for time.Now().Before(deadline) {
		timer := time.NewTimer(t.settle)
		select {
		case _, open := <-t.keys:
			timer.Stop()
			if !open {
				return
			}
		case <-timer.C:
			return
		}
	}
}
