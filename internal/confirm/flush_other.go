//go:build !linux

package confirm

// flushInput is a no-op where TCFLSH is unavailable; discardPending still
// drops whatever the reader has already received.
func flushInput(int) error {
	return nil
}
