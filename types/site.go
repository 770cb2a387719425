package types

import "strings"

// ExtractionMethod identifies which strategy produced the content record.
type ExtractionMethod string

const (
	MethodTabstack    ExtractionMethod = "tabstack"
	MethodPlaywright  ExtractionMethod = "playwright-fallback"
	MethodPlaceholder ExtractionMethod = "placeholder"
)

// LogoQuality is a coarse confidence label for a resolved logo.
type LogoQuality string

const (
	LogoQualityHigh    LogoQuality = "high"
	LogoQualityMedium  LogoQuality = "medium"
	LogoQualityFavicon LogoQuality = "favicon"
)

// Theme classifies a page background as light or dark.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Section is one content section extracted from a page.
type Section struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// ContentRecord holds the marketing copy extracted from a page.
// Title is never empty: the placeholder strategy guarantees a fallback.
type ContentRecord struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	HeroImage   string    `json:"hero_image"`
	Sections    []Section `json:"sections"`
}

// Logo is a resolved brand logo with its provenance strength.
type Logo struct {
	URL        string      `json:"url"`
	StaticPath string      `json:"static_path,omitempty"`
	Quality    LogoQuality `json:"quality"`
}

// Palette is a four-slot brand color palette. All fields are always
// populated with 6-hex-digit values; no partial palette is ever returned.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// BrandingRecord merges logo, colors, font and theme for a site.
type BrandingRecord struct {
	Logo   Logo    `json:"logo"`
	Colors Palette `json:"colors"`
	Font   string  `json:"font"`
	Theme  Theme   `json:"theme"`
}

// SiteMetadata carries derived facts about the site.
type SiteMetadata struct {
	Industry string `json:"industry"`
	Domain   string `json:"domain"`
}

// EnrichedSite is the aggregate result of one extraction call.
// It is created fresh per invocation and never mutated after return.
type EnrichedSite struct {
	Content  ContentRecord    `json:"content"`
	Branding BrandingRecord   `json:"branding"`
	Metadata SiteMetadata     `json:"metadata"`
	Warnings []string         `json:"warnings"`
	Method   ExtractionMethod `json:"extraction_method"`
}

// DomainLabel returns the leading label of a hostname with any www.
// prefix stripped, e.g. "example.com" -> "example".
func DomainLabel(domain string) string {
	label := strings.TrimPrefix(domain, "www.")
	if i := strings.Index(label, "."); i > 0 {
		label = label[:i]
	}
	return label
}
