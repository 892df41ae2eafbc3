package fetch

import (
	"context"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// Fetcher fetches page text for the poll loop. It reuses one HTTP client and
// optionally re-renders the page in a browser when the HTTP body is not usable.
type Fetcher struct {
	client     *resty.Client
	opts       *Options
	useBrowser bool

	// NeedsBrowser reports whether an HTTP body should be re-rendered in the
	// browser. Only consulted when the browser is enabled.
	NeedsBrowser func(html string) bool
	// Render renders a page in a browser. Defaults to WithBrowser.
	Render func(ctx context.Context, url string, opts *Options) (string, error)
}

// NewFetcher creates a Fetcher. useBrowser enables the browser fallback.
func NewFetcher(opts *Options, useBrowser bool) *Fetcher {
	opts = resolve(opts)
	return &Fetcher{
		client:       NewClient(opts),
		opts:         opts,
		useBrowser:   useBrowser,
		NeedsBrowser: func(string) bool { return true },
		Render:       WithBrowser,
	}
}

// Fetch returns the page text at url. HTTP failures are returned as *Error.
// A browser failure is also an *Error; the HTTP body is not used in its place
// because it was already judged unusable.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	result, err := get(ctx, f.client, url)
	if err != nil {
		return "", err
	}
	slog.DebugContext(ctx, "fetched page", "url", url, "status", result.StatusCode, "bytes", len(result.HTML))

	if !f.useBrowser || !f.NeedsBrowser(result.HTML) {
		return result.HTML, nil
	}

	slog.InfoContext(ctx, "page needs rendering, falling back to browser", "url", url)
	html, err := f.Render(ctx, url, f.opts)
	if err != nil {
		return "", &Error{
			URL:     url,
			Message: "browser rendering failed",
			Cause:   err,
		}
	}
	return html, nil
}
