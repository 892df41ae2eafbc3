package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/device-watch/internal/schemas"
	"github.com/jonathan/device-watch/internal/types"
)

const (
	// ContainerSelector matches the hidden element that carries the catalog payload.
	ContainerSelector = "div#ConsumerData"
	// DataAttribute holds the HTML-escaped JSON payload.
	DataAttribute = "data-json"
)

// consumerData mirrors the subset of the payload the extractor reads. Pointer
// fields distinguish an absent value from an empty one.
type consumerData struct {
	Devices []struct {
		Product struct {
			SkuID         any `json:"SkuID"`
			DeviceDetails *struct {
				DeviceName *string `json:"DeviceName"`
				ShopNowCTA *struct {
					URL *string `json:"Url"`
				} `json:"ShopNowCTA"`
				Sortfilters *struct {
					Year *string `json:"year"`
				} `json:"Sortfilters"`
			} `json:"DeviceDetails"`
		} `json:"Product"`
	} `json:"Devices"`
}

// Extract parses the raw page and returns the formatted snapshot text.
func Extract(rawPage string) (string, error) {
	devices, err := ParseDevices(rawPage)
	if err != nil {
		return "", err
	}
	return FormatSnapshot(devices), nil
}

// ParseDevices locates the embedded payload and returns every purchasable
// device in page order. Entries without a SkuID are skipped; an entry missing
// its name, shop URL, or year fails the whole page.
func ParseDevices(rawPage string) ([]types.Device, error) {
	payload, err := embeddedPayload(rawPage)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateConsumerData(payload); err != nil {
		return nil, &ExtractionError{
			Message: "embedded payload does not match the expected shape",
			Cause:   err,
		}
	}

	var data consumerData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, &ExtractionError{
			Message: "failed to decode embedded payload",
			Cause:   err,
		}
	}

	devices := make([]types.Device, 0, len(data.Devices))
	for i, entry := range data.Devices {
		if !hasSkuID(entry.Product.SkuID) {
			continue
		}

		details := entry.Product.DeviceDetails
		if details == nil {
			return nil, missingField(i, "Product.DeviceDetails")
		}
		if details.DeviceName == nil {
			return nil, missingField(i, "DeviceDetails.DeviceName")
		}
		if details.ShopNowCTA == nil || details.ShopNowCTA.URL == nil {
			return nil, missingField(i, "DeviceDetails.ShopNowCTA.Url")
		}
		if details.Sortfilters == nil || details.Sortfilters.Year == nil {
			return nil, missingField(i, "DeviceDetails.Sortfilters.year")
		}

		device := types.Device{
			Name:       cleanupLabel(*details.DeviceName),
			URL:        *details.ShopNowCTA.URL,
			StartPrice: 0,
			Year:       yearPrefix(*details.Sortfilters.Year),
		}
		if err := device.Validate(); err != nil {
			return nil, &ExtractionError{
				Message: fmt.Sprintf("device %d has an invalid year %q", i, *details.Sortfilters.Year),
				Cause:   err,
			}
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// embeddedPayload returns the decoded data-json attribute of the first
// ConsumerData container. The HTML tokenizer decodes character entities in
// attribute values, so the result is raw JSON text.
func embeddedPayload(rawPage string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawPage))
	if err != nil {
		return "", &ExtractionError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	containers := doc.Find(ContainerSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, ok := s.Attr(DataAttribute)
		return ok
	})
	if containers.Length() == 0 {
		return "", &ExtractionError{
			Message: fmt.Sprintf("no %s element with a %s attribute", ContainerSelector, DataAttribute),
		}
	}
	if containers.Length() > 1 {
		slog.Warn("multiple catalog containers found, using the first", "count", containers.Length())
	}

	payload, _ := containers.First().Attr(DataAttribute)
	return payload, nil
}

func hasSkuID(v any) bool {
	switch id := v.(type) {
	case nil:
		return false
	case string:
		return id != ""
	default:
		return true
	}
}

// cleanupLabel replaces literal &nbsp; sequences that survive entity decoding
// (they were double-escaped in the page).
func cleanupLabel(value string) string {
	return strings.ReplaceAll(value, "&nbsp;", " ")
}

// yearPrefix returns the first four characters of a date or filter string.
// Shorter input is returned unchanged and rejected by validation.
func yearPrefix(value string) string {
	runes := []rune(value)
	if len(runes) < 4 {
		return value
	}
	return string(runes[:4])
}

func missingField(index int, field string) error {
	return &ExtractionError{
		Message: fmt.Sprintf("device %d is missing %s", index, field),
	}
}

// HasPayload reports whether the page carries a catalog container. It is used
// to decide whether a fetched page must be rendered by a browser first.
func HasPayload(rawPage string) bool {
	_, err := embeddedPayload(rawPage)
	return err == nil
}
