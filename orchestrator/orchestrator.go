package orchestrator

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"

	"sitecast/assets"
	"sitecast/audiogen"
	"sitecast/branding"
	"sitecast/browser"
	"sitecast/config"
	"sitecast/extraction"
	"sitecast/renderer"
	"sitecast/scriptgen"
	"sitecast/types"
)

// Session is the scoped browser resource one extraction call holds. It
// must be released on every exit path.
type Session interface {
	LoadPage(ctx context.Context, url string) (*browser.PageData, error)
	Screenshot(ctx context.Context, url string) ([]byte, error)
	Close()
}

// Pipeline wires the extraction, branding, script, audio and renderer
// stages. One Pipeline serves concurrent invocations: every call builds
// its own records and warning list, and asset filenames are qualified so
// writes never collide.
type Pipeline struct {
	tabstack *extraction.TabstackClient
	logos    branding.LogoSource
	store    *assets.Store
	writer   *scriptgen.Writer
	audio    *audiogen.Generator
	renderer *renderer.Client

	// newSession is a seam so tests can supply a fake browser.
	newSession func(ctx context.Context) (Session, error)
}

// New assembles the production pipeline from configuration.
func New() *Pipeline {
	var mirror *assets.Mirror
	if bucket := config.S3Bucket(); bucket != "" {
		m, err := assets.NewMirror(context.Background(), bucket, config.S3Prefix(), config.S3Region())
		if err != nil {
			log.Printf("S3 mirror not initialized (continuing without): %v", err)
		} else {
			mirror = m
		}
	}

	store := assets.NewStore(config.PublicRoot(), mirror)

	return &Pipeline{
		tabstack: extraction.NewTabstackClient(config.TabstackAPIKey()),
		logos:    branding.NewLogoResolver(),
		store:    store,
		writer:   scriptgen.NewWriter(config.CohereAPIKey()),
		audio: audiogen.NewGenerator(
			store,
			audiogen.NewMinimax(config.MinimaxAPIKey(), config.MinimaxGroupID()),
			audiogen.NewOpenAISpeech(config.OpenAIAPIKey()),
			audiogen.NewMusicGen(config.ReplicateAPIKey()),
		),
		renderer: renderer.NewClient(config.RendererURL()),
		newSession: func(ctx context.Context) (Session, error) {
			return browser.NewSession(ctx)
		},
	}
}

// ExtractURLContent turns a page URL into an enriched site record.
// Content extraction, branding extraction and the CSS style-signal pass
// run in parallel; the join below is the only synchronization barrier.
// Always returns a complete record; every degradation surfaces as a
// warning, never as a partial field.
func (p *Pipeline) ExtractURLContent(ctx context.Context, pageURL string) (*types.EnrichedSite, error) {
	log.Printf("Extracting content from: %s", pageURL)

	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, fmt.Errorf("invalid URL %q", pageURL)
	}
	domain := parsed.Hostname()

	warns := &types.Warnings{}

	session, err := p.newSession(ctx)
	if err != nil {
		log.Printf("✗ Headless browser unavailable: %v", err)
		warns.Addf("browser: session unavailable (%v), browser-based strategies skipped", err)
		session = nil
	}
	if session != nil {
		defer session.Close()
	}

	// Page loads are shared between the content fallback and the style
	// pass so one extraction call navigates at most once.
	pages := newPageCache(session)

	var (
		wg sync.WaitGroup

		content      types.ContentRecord
		method       types.ExtractionMethod
		contentWarns = &types.Warnings{}

		logo       types.Logo
		palette    types.Palette
		brandWarns = &types.Warnings{}

		styles     *browser.StyleSignals
		styleWarns = &types.Warnings{}
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		content, method = p.extractContent(ctx, pageURL, pages, contentWarns)
	}()
	go func() {
		defer wg.Done()
		var shooter branding.Screenshotter
		if session != nil {
			shooter = session
		}
		logo, palette = branding.NewAssembler(p.logos, shooter).Resolve(ctx, domain, pageURL, brandWarns)
	}()
	go func() {
		defer wg.Done()
		styles = p.extractStyles(ctx, pageURL, pages, styleWarns)
	}()
	wg.Wait()

	warns.Merge(contentWarns.List())
	warns.Merge(brandWarns.List())
	warns.Merge(styleWarns.List())

	brand := branding.Finalize(logo, palette, styles)

	if staticPath, err := p.store.SaveLogo(ctx, brand.Logo.URL, domain); err != nil {
		// The remote URL remains usable; persistence is best-effort.
		log.Printf("✗ Logo persistence failed: %v", err)
		warns.Addf("branding: logo download failed (%v), remote URL kept as reference", err)
	} else {
		brand.Logo.StaticPath = staticPath
	}

	site := &types.EnrichedSite{
		Content:  content,
		Branding: brand,
		Metadata: types.SiteMetadata{
			Industry: extraction.InferIndustry(content.Title, content.Description),
			Domain:   domain,
		},
		Warnings: warns.List(),
		Method:   method,
	}

	log.Printf("✓ Extraction complete: method=%s industry=%s warnings=%d",
		site.Method, site.Metadata.Industry, len(site.Warnings))
	return site, nil
}

// GenerateAudio produces the audio bundle for a script and music style.
func (p *Pipeline) GenerateAudio(ctx context.Context, style, script string, duration float64) types.AudioBundle {
	return p.audio.Generate(ctx, style, script, duration)
}

// Result is everything one full pipeline run yields. Render is nil when
// no renderer is configured or the render call failed.
type Result struct {
	Site     *types.EnrichedSite `json:"site"`
	Script   string              `json:"script"`
	Props    types.RenderProps   `json:"props"`
	Render   *types.RenderResult `json:"render,omitempty"`
	Warnings []string            `json:"warnings"`
}

// Run executes the whole pipeline: extract, write the narration script,
// generate audio, assemble renderer props, and optionally call the
// external renderer. Audio and renderer failures degrade; only an
// unusable URL is a hard error.
func (p *Pipeline) Run(ctx context.Context, pageURL, musicStyle string, duration float64) (*Result, error) {
	if duration <= 0 {
		duration = config.DefaultVideoDuration
	}

	site, err := p.ExtractURLContent(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	warns := &types.Warnings{}
	warns.Merge(site.Warnings)

	script := p.writer.Write(ctx, site, warns)

	bundle := p.GenerateAudio(ctx, musicStyle, script, duration)
	warns.Merge(bundle.Warnings)

	result := &Result{
		Site:   site,
		Script: script,
		Props:  renderer.BuildProps(site, bundle, duration),
	}

	if p.renderer != nil {
		rendered, err := p.renderer.Render(ctx, result.Props)
		if err != nil {
			log.Printf("✗ Render call failed: %v", err)
			warns.Addf("render: renderer call failed: %v", err)
		} else {
			result.Render = &rendered
		}
	}

	result.Warnings = warns.List()
	return result, nil
}

func (p *Pipeline) extractContent(ctx context.Context, pageURL string, pages *pageCache, warns *types.Warnings) (types.ContentRecord, types.ExtractionMethod) {
	strategies := []extraction.Strategy{p.tabstack.Strategy()}
	if pages.available() {
		strategies = append(strategies, extraction.NewBrowserStrategy(pages).Strategy())
	}
	strategies = append(strategies, extraction.PlaceholderStrategy{}.Strategy())

	return extraction.NewExtractor(strategies...).Extract(ctx, pageURL, warns)
}

func (p *Pipeline) extractStyles(ctx context.Context, pageURL string, pages *pageCache, warns *types.Warnings) *browser.StyleSignals {
	if !pages.available() {
		return nil
	}

	data, err := pages.LoadPage(ctx, pageURL)
	if err != nil {
		warns.Addf("branding: style-signal pass failed (%v), keeping screenshot palette", err)
		return nil
	}
	return &data.Styles
}

// pageCache deduplicates page loads within one extraction call.
type pageCache struct {
	session Session
	once    sync.Once
	data    *browser.PageData
	err     error
}

func newPageCache(session Session) *pageCache {
	return &pageCache{session: session}
}

func (c *pageCache) available() bool { return c != nil && c.session != nil }

// LoadPage loads the page once and replays the result to later callers.
func (c *pageCache) LoadPage(ctx context.Context, url string) (*browser.PageData, error) {
	c.once.Do(func() {
		c.data, c.err = c.session.LoadPage(ctx, url)
	})
	return c.data, c.err
}
