// Package shot captures a full-page screenshot of the running site with a
// headless browser. One-shot developer utility, not part of the page runtime.
package shot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// Options controls a single capture.
type Options struct {
	URL        string
	OutputPath string
	Width      int
	Height     int
	Timeout    time.Duration
}

// withDefaults fills unset fields with the fixed defaults.
func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = "http://localhost:8080"
	}
	if o.OutputPath == "" {
		o.OutputPath = "screenshot.png"
	}
	if o.Width <= 0 {
		o.Width = 1440
	}
	if o.Height <= 0 {
		o.Height = 900
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// Capture launches a headless browser, navigates to the target address with
// a fixed viewport, and writes a full-page PNG to the output path.
func Capture(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()

	ctx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	ctx, cancelTimeout := context.WithTimeout(ctx, opts.Timeout)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(opts.URL),
		chromedp.FullScreenshot(&buf, 90),
	)
	if err != nil {
		return fmt.Errorf("capturing %s: %w", opts.URL, err)
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.OutputPath, buf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}
	return nil
}
