package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/device-watch/internal/types"
)

// ANSI Color Codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
)

// Render writes the edit script with "-", "+" and " " prefixes. When color is
// set, deletions are red and insertions green.
func Render(w io.Writer, changes []types.Change, color bool) error {
	for _, c := range changes {
		prefix, code := " ", ""
		switch c.Op {
		case types.OpDelete:
			prefix, code = "-", ColorRed
		case types.OpInsert:
			prefix, code = "+", ColorGreen
		}
		if !color {
			code = ""
		}

		line := strings.TrimSuffix(c.Text, "\n")
		var err error
		if code != "" {
			_, err = fmt.Fprintf(w, "%s%s%s%s\n", code, prefix, line, ColorReset)
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", prefix, line)
		}
		if err != nil {
			return fmt.Errorf("failed to render diff: %w", err)
		}
	}
	return nil
}
