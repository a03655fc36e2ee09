// Package render captures HTML documents as PNG images through headless Chromium
package render

import (
	"context"
	"net/url"
	"time"

	perr "podium/internal/platform/errors"

	"github.com/chromedp/chromedp"
)

// Defaults for cover captures
const (
	DefaultWidth      = 1200
	DefaultHeight     = 630
	DefaultTimeoutSec = 30
)

// Chromium renders via a throwaway chromedp context per capture
type Chromium struct {
	Timeout time.Duration
}

// New returns a Chromium renderer with the default timeout
func New() *Chromium {
	return &Chromium{Timeout: DefaultTimeoutSec * time.Second}
}

// PNG loads the HTML document in a fresh headless tab and screenshots the
// viewport at the requested size
func (c *Chromium) PNG(parent context.Context, html string, width, height int) ([]byte, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeoutSec * time.Second
	}

	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate("data:text/html," + url.PathEscape(html)),
		// allow web fonts and final paints to settle
		chromedp.Sleep(200 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, perr.Unavailablef("chromium capture failed: %v", err)
	}
	return png, nil
}
