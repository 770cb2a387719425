package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sitecast/types"
)

func failingStrategy(name string, method types.ExtractionMethod) Strategy {
	return Strategy{
		Name:   name,
		Method: method,
		Run: func(context.Context, string, *types.Warnings) (types.ContentRecord, error) {
			return types.ContentRecord{}, errors.New("boom")
		},
	}
}

func succeedingStrategy(name string, method types.ExtractionMethod, title string) Strategy {
	return Strategy{
		Name:   name,
		Method: method,
		Run: func(context.Context, string, *types.Warnings) (types.ContentRecord, error) {
			return types.ContentRecord{Title: title}, nil
		},
	}
}

func TestExtractStopsAtFirstSuccess(t *testing.T) {
	e := NewExtractor(
		succeedingStrategy("primary", types.MethodTabstack, "Primary"),
		succeedingStrategy("secondary", types.MethodPlaywright, "Secondary"),
	)

	warns := &types.Warnings{}
	content, method := e.Extract(context.Background(), "https://example.com", warns)

	if content.Title != "Primary" {
		t.Fatalf("Title = %q; want %q", content.Title, "Primary")
	}
	if method != types.MethodTabstack {
		t.Fatalf("method = %q; want %q", method, types.MethodTabstack)
	}
	if warns.Len() != 0 {
		t.Fatalf("warnings = %v; want none", warns.List())
	}
}

func TestExtractFallsThroughAndWarnsInOrder(t *testing.T) {
	e := NewExtractor(
		failingStrategy("tabstack", types.MethodTabstack),
		failingStrategy("playwright-fallback", types.MethodPlaywright),
		succeedingStrategy("placeholder", types.MethodPlaceholder, "Fallback"),
	)

	warns := &types.Warnings{}
	content, method := e.Extract(context.Background(), "https://example.com", warns)

	if content.Title != "Fallback" {
		t.Fatalf("Title = %q; want %q", content.Title, "Fallback")
	}
	if method != types.MethodPlaceholder {
		t.Fatalf("method = %q; want %q", method, types.MethodPlaceholder)
	}

	got := warns.List()
	if len(got) != 2 {
		t.Fatalf("warnings = %v; want 2 entries", got)
	}
	if !strings.Contains(got[0], "tabstack failed") {
		t.Fatalf("warnings[0] = %q; want tabstack failure first", got[0])
	}
	if !strings.Contains(got[1], "playwright-fallback failed") {
		t.Fatalf("warnings[1] = %q; want playwright-fallback failure second", got[1])
	}
}

func TestPlaceholderContentFromDomain(t *testing.T) {
	warns := &types.Warnings{}
	content := PlaceholderContent("https://www.acme.io/pricing", warns)

	if content.Title != "Acme" {
		t.Fatalf("Title = %q; want %q", content.Title, "Acme")
	}
	if !strings.Contains(content.Description, "acme") {
		t.Fatalf("Description = %q; want domain label mentioned", content.Description)
	}
	if len(content.Features) != 3 {
		t.Fatalf("Features = %v; want 3 generic entries", content.Features)
	}
	if content.Sections == nil {
		t.Fatal("Sections is nil; want empty slice")
	}

	found := false
	for _, w := range warns.List() {
		if strings.Contains(w, "PLACEHOLDER") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v; want one containing PLACEHOLDER", warns.List())
	}
}

func TestPlaceholderContentDegenerateHostnames(t *testing.T) {
	// Hostnames like "www." carry an empty label after stripping; the
	// terminal strategy must still produce usable content, never panic.
	cases := []struct {
		name    string
		pageURL string
	}{
		{"bare www hostname", "https://www./pricing"},
		{"unparseable url", "://nope"},
		{"no hostname", "not-a-url"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			warns := &types.Warnings{}
			content := PlaceholderContent(c.pageURL, warns)

			if content.Title != "Site" {
				t.Fatalf("Title = %q; want generic %q fallback", content.Title, "Site")
			}
			if warns.Len() != 1 {
				t.Fatalf("warnings = %v; want one placeholder notice", warns.List())
			}
		})
	}
}

func TestInferIndustry(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"tech", "DevTool", "A platform for developer teams", "tech"},
		{"finance", "Acme", "Modern payment infrastructure", "finance"},
		{"healthcare", "CarePlus", "Book a doctor in minutes", "healthcare"},
		{"ecommerce", "ShopFast", "The marketplace for vintage goods", "ecommerce"},
		{"education", "LearnIt", "Online course library", "education"},
		{"gaming", "Arena", "Competitive esports tournaments", "gaming"},
		{"general", "Acme", "We make things", "general"},
		{"first match wins", "CloudBank", "cloud banking software", "tech"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InferIndustry(c.title, c.description); got != c.want {
				t.Fatalf("InferIndustry(%q, %q) = %q; want %q", c.title, c.description, got, c.want)
			}
		})
	}
}
