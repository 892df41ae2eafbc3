package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/device-watch/internal/types"
)

// FormatSnapshot renders devices as sorted display lines joined by newlines
// with one trailing newline. The result does not depend on input order.
func FormatSnapshot(devices []types.Device) string {
	lines := make([]string, 0, len(devices))
	for _, d := range devices {
		lines = append(lines, d.Line())
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n") + "\n"
}

var snapshotLine = regexp.MustCompile(`^\[(.{4})\] (.*) - \$(\d+) - (.*)$`)

// ParseSnapshot reads display lines back into devices. Lines that do not
// match the display format are skipped.
func ParseSnapshot(text string) []types.Device {
	var devices []types.Device
	for _, line := range strings.Split(text, "\n") {
		m := snapshotLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		price, err := strconv.ParseUint(m[3], 10, 64)
		if err != nil {
			continue
		}
		devices = append(devices, types.Device{
			Year:       m[1],
			Name:       m[2],
			StartPrice: uint(price),
			URL:        m[4],
		})
	}
	return devices
}
