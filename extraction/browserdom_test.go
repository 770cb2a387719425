package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sitecast/browser"
	"sitecast/types"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<title>Acme | Home</title>
	<meta name="description" content="Acme ships widgets faster.">
	<meta property="og:image" content="https://acme.io/hero.png">
</head>
<body>
	<h1>Acme Widgets</h1>
	<ul>
		<li>Ship in minutes, not weeks</li>
		<li>ok</li>
		<li>Dashboards your whole team understands</li>
	</ul>
	<h2>Why Acme</h2>
	<p>Because widgets should be simple.</p>
	<h3>Pricing</h3>
	<div>no adjacent paragraph</div>
</body>
</html>`

func TestParsePage(t *testing.T) {
	data := &browser.PageData{Title: "Acme | Home", HTML: samplePage}

	record, err := ParsePage(data, "https://acme.io")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}

	if record.Title != "Acme Widgets" {
		t.Fatalf("Title = %q; want h1 text", record.Title)
	}
	if record.Description != "Acme ships widgets faster." {
		t.Fatalf("Description = %q; want meta description", record.Description)
	}
	if record.HeroImage != "https://acme.io/hero.png" {
		t.Fatalf("HeroImage = %q; want og:image", record.HeroImage)
	}

	// The two-character list item is below the minimum feature length.
	want := []string{"Ship in minutes, not weeks", "Dashboards your whole team understands"}
	if len(record.Features) != len(want) {
		t.Fatalf("Features = %v; want %v", record.Features, want)
	}
	for i := range want {
		if record.Features[i] != want[i] {
			t.Fatalf("Features[%d] = %q; want %q", i, record.Features[i], want[i])
		}
	}

	if len(record.Sections) != 2 {
		t.Fatalf("Sections = %v; want 2", record.Sections)
	}
	if record.Sections[0].Heading != "Why Acme" || record.Sections[0].Text != "Because widgets should be simple." {
		t.Fatalf("Sections[0] = %+v; want heading with adjacent paragraph", record.Sections[0])
	}
	if record.Sections[1].Heading != "Pricing" || record.Sections[1].Text != "" {
		t.Fatalf("Sections[1] = %+v; want heading with empty text", record.Sections[1])
	}
}

func TestParsePageFallsBackToDocumentTitle(t *testing.T) {
	data := &browser.PageData{
		Title: "Acme | Home",
		HTML:  `<html><head><title>Acme | Home</title></head><body><p>hi</p></body></html>`,
	}

	record, err := ParsePage(data, "https://acme.io")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if record.Title != "Acme | Home" {
		t.Fatalf("Title = %q; want document title fallback", record.Title)
	}
}

func TestParsePageRejectsMissingTitle(t *testing.T) {
	data := &browser.PageData{Title: " ", HTML: `<html><body><p>nothing here</p></body></html>`}

	if _, err := ParsePage(data, "https://acme.io"); err == nil {
		t.Fatal("ParsePage accepted page with no usable title")
	}
}

type stubLoader struct {
	data *browser.PageData
	err  error
}

func (s *stubLoader) LoadPage(context.Context, string) (*browser.PageData, error) {
	return s.data, s.err
}

func TestBrowserStrategyWarnsOnThinFeatures(t *testing.T) {
	thin := `<html><body><h1>Acme Widgets</h1><ul><li>Only one real feature</li></ul></body></html>`
	strategy := NewBrowserStrategy(&stubLoader{data: &browser.PageData{Title: "Acme", HTML: thin}})

	warns := &types.Warnings{}
	record, err := strategy.Extract(context.Background(), "https://acme.io", warns)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(record.Features) != 1 {
		t.Fatalf("Features = %v; want 1", record.Features)
	}

	if warns.Len() != 1 || !strings.Contains(warns.List()[0], "only 1 feature") {
		t.Fatalf("warnings = %v; want thin-features notice", warns.List())
	}
}

func TestBrowserStrategyPropagatesLoadError(t *testing.T) {
	strategy := NewBrowserStrategy(&stubLoader{err: errors.New("navigation timeout")})

	warns := &types.Warnings{}
	if _, err := strategy.Extract(context.Background(), "https://acme.io", warns); err == nil {
		t.Fatal("Extract swallowed page load error")
	}
}
