package snapshot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"vedic-admin/logger"
)

const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

type Options struct {
	Format  string
	Width   int64
	Height  int64
	Timeout time.Duration
	// WaitFor is a CSS selector that must be visible before capturing.
	WaitFor string
}

// Normalize fills in defaults and checks the format.
func (o *Options) Normalize() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = FormatPDF
	}
	if o.Format != FormatPDF && o.Format != FormatPNG {
		return fmt.Errorf("unsupported snapshot format %q", o.Format)
	}
	if o.Width <= 0 {
		o.Width = 1366
	}
	if o.Height <= 0 {
		o.Height = 900
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.WaitFor == "" {
		o.WaitFor = ".admin-page"
	}
	return nil
}

// Extension is the file extension for the captured format. Call Normalize
// first.
func (o Options) Extension() string {
	return "." + o.Format
}

// Capture loads url in headless Chrome and returns the page as a PDF or a
// full-page PNG.
func Capture(ctx context.Context, url string, opts Options) ([]byte, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("snapshot url must be http(s), got %q", url)
	}

	browserCtx, cancel := newBrowser(ctx)
	defer cancel()

	taskCtx, taskCancel := context.WithTimeout(browserCtx, opts.Timeout)
	defer taskCancel()

	var buf []byte
	actions := []chromedp.Action{
		emulation.SetDeviceMetricsOverride(opts.Width, opts.Height, 1, false),
		chromedp.Navigate(url),
		chromedp.WaitVisible(opts.WaitFor, chromedp.ByQuery),
	}
	switch opts.Format {
	case FormatPNG:
		actions = append(actions, chromedp.FullScreenshot(&buf, 90))
	default:
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}))
	}

	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return nil, fmt.Errorf("failed to capture %s: %w", url, err)
	}
	logger.Logger.Printf("Captured %s as %s (%d bytes)", url, opts.Format, len(buf))
	return buf, nil
}

func newBrowser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return browserCtx, func() {
		browserCancel()
		allocCancel()
	}
}
