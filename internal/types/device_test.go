//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevice_Line(t *testing.T) {
	d := Device{Name: "Pro 9", URL: "http://x/pro9", Year: "2023"}
	assert.Equal(t, "[2023] Pro 9 - $0 - http://x/pro9", d.Line())
}

func TestDevice_Validation(t *testing.T) {
	tests := []struct {
		name    string
		device  Device
		wantErr bool
	}{
		{
			name:   "four character year",
			device: Device{Name: "Laptop 5", URL: "https://example.com/l5", Year: "2022"},
		},
		{
			name:   "empty name and url are allowed",
			device: Device{Year: "2021"},
		},
		{
			name:    "short year",
			device:  Device{Name: "Go 3", Year: "202"},
			wantErr: true,
		},
		{
			name:    "long year",
			device:  Device{Name: "Go 3", Year: "20231"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.device.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecisionAndOutcome_String(t *testing.T) {
	assert.Equal(t, "overwrite", DecisionOverwrite.String())
	assert.Equal(t, "ignore", DecisionIgnore.String())
	assert.Equal(t, "quit", DecisionQuit.String())
	assert.Equal(t, "unknown", Decision(0).String())

	assert.Equal(t, "unchanged", OutcomeUnchanged.String())
	assert.Equal(t, "overwritten", OutcomeOverwritten.String())
	assert.Equal(t, "ignored", OutcomeIgnored.String())
	assert.Equal(t, "quit", OutcomeQuit.String())
}
