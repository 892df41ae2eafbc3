// Package types provides type definitions for structured data used throughout the device-watch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Device is one purchasable catalog entry extracted from the source page.
type Device struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	StartPrice uint   `json:"start_price"` // never populated from the page, always 0
	Year       string `json:"year" validate:"len=4"`
}

// Validate validates the Device using the validator.
func (d *Device) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// Line returns the snapshot display line for the device.
func (d Device) Line() string {
	return fmt.Sprintf("[%s] %s - $%d - %s", d.Year, d.Name, d.StartPrice, d.URL)
}
