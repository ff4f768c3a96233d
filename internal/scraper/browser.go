package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// ErrPageNotReady means the price marker never showed up within the wait
// deadline. Fatal to the run: no partial output is produced.
var ErrPageNotReady = errors.New("menu page never became ready")

// readyMarker is the text whose presence signals that the SPA has rendered
// menu content. Prices are the last thing the menu hydrates.
const readyMarker = "Rs."

// Browser drives a headless Chrome session against the menu page: navigate,
// wait for content, scroll until the page height stabilizes (lazy-loaded
// cards and images), then snapshot the rendered DOM.
type Browser struct {
	menuURL             string
	pageLoadTimeout     time.Duration
	scrollInterval      time.Duration
	maxScrollIterations int
}

func NewBrowser(menuURL string, pageLoadTimeout, scrollInterval time.Duration, maxScrollIterations int) *Browser {
	return &Browser{
		menuURL:             menuURL,
		pageLoadTimeout:     pageLoadTimeout,
		scrollInterval:      scrollInterval,
		maxScrollIterations: maxScrollIterations,
	}
}

// FetchRenderedHTML returns the fully rendered page HTML. The browser is
// released via the deferred cancels on every path, success or failure.
func (b *Browser) FetchRenderedHTML(ctx context.Context) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		chromedp.WindowSize(1920, 1080),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	slog.Info("Navigating to menu page", "url", b.menuURL)
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(b.menuURL),
		chromedp.Poll(
			fmt.Sprintf(`document.body && document.body.innerText.includes(%q)`, readyMarker),
			nil,
			chromedp.WithPollingTimeout(b.pageLoadTimeout),
		),
	)
	if err != nil {
		if errors.Is(err, chromedp.ErrPollingTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: no %q text within %v", ErrPageNotReady, readyMarker, b.pageLoadTimeout)
		}
		return "", fmt.Errorf("failed to load menu page: %w", err)
	}

	if err := b.scrollUntilStable(browserCtx); err != nil {
		return "", err
	}

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to capture rendered page: %w", err)
	}
	return html, nil
}

// scrollUntilStable scrolls to the bottom until the document height stops
// growing, which triggers the menu's lazy loading. The loop is bounded by
// maxScrollIterations so a page that keeps appending content cannot hang
// the run.
func (b *Browser) scrollUntilStable(ctx context.Context) error {
	var lastHeight int64
	if err := chromedp.Run(ctx, chromedp.Evaluate(`document.body.scrollHeight`, &lastHeight)); err != nil {
		return fmt.Errorf("failed to read page height: %w", err)
	}

	for i := 0; i < b.maxScrollIterations; i++ {
		var newHeight int64
		err := chromedp.Run(ctx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(b.scrollInterval),
			chromedp.Evaluate(`document.body.scrollHeight`, &newHeight),
		)
		if err != nil {
			return fmt.Errorf("scroll iteration %d failed: %w", i+1, err)
		}
		if newHeight == lastHeight {
			slog.Info("Page height stabilized", "height", newHeight, "iterations", i+1)
			return nil
		}
		lastHeight = newHeight
	}

	slog.Warn("Page kept growing past scroll bound, proceeding with current content",
		"iterations", b.maxScrollIterations, "height", lastHeight)
	return nil
}
