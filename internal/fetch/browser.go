// Package fetch - browser.go provides headless browser rendering for script-rendered pages.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultBrowserSettle is how long the page is given to run scripts after load.
const DefaultBrowserSettle = 3 * time.Second

// WithBrowser renders a page in a headless browser and returns the rendered HTML.
// The browser sends opts.UserAgent and gives up after opts.Timeout.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, opts *Options) (string, error) {
	opts = resolve(opts)
	slog.DebugContext(ctx, "starting headless browser", "url", url, "user_agent", opts.UserAgent)

	// Create browser context with timeout
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(opts.UserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	// Set timeout
	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Additional wait for JavaScript to render content
		chromedp.Sleep(DefaultBrowserSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	slog.DebugContext(ctx, "rendered page", "url", url, "bytes", len(html))

	return html, nil
}
