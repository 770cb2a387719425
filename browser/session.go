package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"sitecast/config"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Session is a scoped headless Chrome session. One session is opened per
// extraction call and must be released with Close on every exit path.
type Session struct {
	ctx         context.Context
	ctxCancel   context.CancelFunc
	allocCancel context.CancelFunc
}

// StyleSignals are computed-style color hints pulled from the live page,
// in override priority order: custom property, button background, link
// color. Values are raw CSS color strings (rgb(...) or hex) and may be
// empty when the page offers no signal.
type StyleSignals struct {
	CustomProperty string `json:"custom_property"`
	ButtonColor    string `json:"button_color"`
	LinkColor      string `json:"link_color"`
}

// PageData is everything one navigation yields: document title, full
// rendered HTML for DOM heuristics, and style signals for the color
// upgrade pass.
type PageData struct {
	Title  string       `json:"title"`
	HTML   string       `json:"html"`
	Styles StyleSignals `json:"styles"`
}

// NewSession launches a headless browser. The caller owns the session
// and must defer Close.
func NewSession(parent context.Context) (*Session, error) {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, opts...)
	browserCtx, ctxCancel := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so a broken Chrome install fails
	// here instead of mid-extraction.
	startCtx, cancel := context.WithTimeout(browserCtx, 10*time.Second)
	defer cancel()
	if err := chromedp.Run(startCtx, chromedp.Navigate("about:blank")); err != nil {
		ctxCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to launch headless browser: %w", err)
	}

	return &Session{ctx: browserCtx, ctxCancel: ctxCancel, allocCancel: allocCancel}, nil
}

// Close releases the browser process and its allocator.
func (s *Session) Close() {
	s.ctxCancel()
	s.allocCancel()
}

// LoadPage navigates to url in its own tab, waits for dynamic content to
// settle, and returns the rendered document plus style signals. Each call
// opens a fresh tab so concurrent loads and screenshots never contend for
// one target.
func (s *Session) LoadPage(ctx context.Context, url string) (*PageData, error) {
	tabCtx, tabCancel := chromedp.NewContext(s.ctx)
	defer tabCancel()

	runCtx, cancel := context.WithTimeout(tabCtx, config.PageNavigationTimeout+config.PageSettleDelay)
	defer cancel()
	defer context.AfterFunc(ctx, cancel)()

	data := &PageData{}
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(config.PageSettleDelay),
		chromedp.Title(&data.Title),
		chromedp.OuterHTML("html", &data.HTML),
		chromedp.Evaluate(styleSignalsJS, &data.Styles),
	)
	if err != nil {
		return nil, fmt.Errorf("page load failed for %s: %w", url, err)
	}

	log.Printf("✓ Page loaded: %s (%d bytes)", url, len(data.HTML))
	return data, nil
}

// Screenshot navigates to url and captures a full-page, high-DPI PNG
// after the settle delay.
func (s *Session) Screenshot(ctx context.Context, url string) ([]byte, error) {
	tabCtx, tabCancel := chromedp.NewContext(s.ctx)
	defer tabCancel()

	runCtx, cancel := context.WithTimeout(tabCtx, config.PageNavigationTimeout+config.PageSettleDelay)
	defer cancel()
	defer context.AfterFunc(ctx, cancel)()

	var buf []byte
	err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(1920, 1080, chromedp.EmulateScale(2)),
		chromedp.Navigate(url),
		chromedp.Sleep(config.PageSettleDelay),
		// Quality 100 makes chromedp emit PNG rather than JPEG.
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed for %s: %w", url, err)
	}

	log.Printf("✓ Screenshot captured: %s (%d bytes)", url, len(buf))
	return buf, nil
}

// styleSignalsJS pulls color hints from the rendered page. Custom
// properties are checked against the names design systems commonly use.
const styleSignalsJS = `(() => {
	const root = getComputedStyle(document.documentElement);
	let custom = '';
	for (const name of ['--primary', '--primary-color', '--color-primary', '--brand-color', '--accent']) {
		const v = root.getPropertyValue(name).trim();
		if (v) { custom = v; break; }
	}
	let button = '';
	const btn = document.querySelector('button, .btn, [class*="button"]');
	if (btn) {
		const bg = getComputedStyle(btn).backgroundColor;
		if (bg && bg !== 'rgba(0, 0, 0, 0)' && bg !== 'transparent') button = bg;
	}
	let link = '';
	const a = document.querySelector('a[href]');
	if (a) link = getComputedStyle(a).color;
	return { custom_property: custom, button_color: button, link_color: link };
})()`
