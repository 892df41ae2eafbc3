// Package fetch provides URL fetching for the catalog page.
// Plain HTTP goes through resty; script-rendered pages can fall back to a
// headless browser.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; DeviceWatch/1.0)"

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// resolve returns a copy of opts with zero values replaced by defaults.
func resolve(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	resolved := *opts
	if resolved.Timeout <= 0 {
		resolved.Timeout = DefaultTimeout
	}
	if resolved.UserAgent == "" {
		resolved.UserAgent = DefaultUserAgent
	}
	return &resolved
}

// NewClient builds a resty client configured from opts.
func NewClient(opts *Options) *resty.Client {
	opts = resolve(opts)
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		client.SetHeader(key, value)
	}
	return client
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	return get(ctx, NewClient(opts), urlStr)
}

func get(ctx context.Context, client *resty.Client, urlStr string) (*Result, error) {
	// Validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	res, err := client.R().
		SetContext(ctx).
		Get(urlStr)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        res.String(),
		ContentType: res.Header().Get("Content-Type"),
		StatusCode:  res.StatusCode(),
	}

	// Check for non-success status
	if !res.IsSuccess() {
		return result, &Error{
			URL:        urlStr,
			Message:    fmt.Sprintf("HTTP status %d", res.StatusCode()),
			StatusCode: res.StatusCode(),
		}
	}

	return result, nil
}
