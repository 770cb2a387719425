package extraction

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"sitecast/browser"
	"sitecast/config"
	"sitecast/types"
)

// idealFeatureCount is the number of feature bullets a full marketing
// page is expected to yield.
const idealFeatureCount = 3

// PageLoader is the slice of the browser session the DOM fallback needs.
type PageLoader interface {
	LoadPage(ctx context.Context, url string) (*browser.PageData, error)
}

// BrowserStrategy extracts content by loading the page in a headless
// browser and applying DOM heuristics to the rendered document.
type BrowserStrategy struct {
	loader PageLoader
}

// NewBrowserStrategy wraps a page loader as a content strategy.
func NewBrowserStrategy(loader PageLoader) *BrowserStrategy {
	return &BrowserStrategy{loader: loader}
}

// Strategy adapts the DOM fallback into a chain entry.
func (b *BrowserStrategy) Strategy() Strategy {
	return Strategy{
		Name:   "playwright-fallback",
		Method: types.MethodPlaywright,
		Run:    b.Extract,
	}
}

// Extract loads the page and derives content from its DOM. Success
// requires a usable title; everything else degrades to empty values.
func (b *BrowserStrategy) Extract(ctx context.Context, pageURL string, warns *types.Warnings) (types.ContentRecord, error) {
	var empty types.ContentRecord

	data, err := b.loader.LoadPage(ctx, pageURL)
	if err != nil {
		return empty, err
	}

	record, err := ParsePage(data, pageURL)
	if err != nil {
		return empty, err
	}

	if len(record.Features) > 0 && len(record.Features) < idealFeatureCount {
		warns.Addf("content: browser fallback found only %d feature(s), fewer than the ideal %d", len(record.Features), idealFeatureCount)
	}
	return record, nil
}

// ParsePage applies DOM heuristics to a rendered page:
// title = first non-empty of h1 text and document title; description =
// meta description, og:description, then readability excerpt; features =
// list-item texts of plausible length; sections = h2/h3 headings with any
// adjacent paragraph text.
func ParsePage(data *browser.PageData, pageURL string) (types.ContentRecord, error) {
	var empty types.ContentRecord

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(data.HTML))
	if err != nil {
		return empty, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(data.Title)
	}
	if len(title) <= 1 {
		return empty, fmt.Errorf("no usable title found in DOM")
	}

	description := metaContent(doc, `meta[name="description"]`)
	if description == "" {
		description = metaContent(doc, `meta[property="og:description"]`)
	}
	if description == "" {
		description = readabilityExcerpt(data.HTML, pageURL)
	}

	var features []string
	doc.Find("li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if len(text) >= config.MinFeatureLength && len(text) <= config.MaxFeatureLength {
			features = append(features, text)
		}
		return len(features) < config.MaxFeatures
	})

	var sections []types.Section
	doc.Find("h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		heading := strings.TrimSpace(sel.Text())
		if heading == "" {
			return true
		}
		text := strings.TrimSpace(sel.NextFiltered("p").Text())
		sections = append(sections, types.Section{Heading: heading, Text: text})
		return len(sections) < config.MaxSections
	})

	return types.ContentRecord{
		Title:       title,
		Description: description,
		Features:    features,
		HeroImage:   metaContent(doc, `meta[property="og:image"]`),
		Sections:    sections,
	}, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// readabilityExcerpt runs the readability extractor over the raw HTML as
// a last resort for a description. Failures just mean no description.
func readabilityExcerpt(html, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.Excerpt)
}
