package extraction

import (
	"context"
	"net/url"
	"strings"

	"sitecast/types"
)

// PlaceholderStrategy is the guaranteed-success terminal of the content
// chain. It fabricates clearly marked generic copy from the domain name
// so downstream stages always have something to work with.
type PlaceholderStrategy struct{}

// Strategy adapts the placeholder into a chain entry.
func (PlaceholderStrategy) Strategy() Strategy {
	return Strategy{
		Name:   "placeholder",
		Method: types.MethodPlaceholder,
		Run: func(_ context.Context, pageURL string, warns *types.Warnings) (types.ContentRecord, error) {
			return PlaceholderContent(pageURL, warns), nil
		},
	}
}

// PlaceholderContent builds deterministic generic content for pageURL and
// records a warning demanding the caller rewrite it before use.
func PlaceholderContent(pageURL string, warns *types.Warnings) types.ContentRecord {
	// DomainLabel can come back empty even for a non-empty hostname
	// (e.g. "www."), and this strategy must never fail.
	label := "site"
	if parsed, err := url.Parse(pageURL); err == nil && parsed.Hostname() != "" {
		if l := types.DomainLabel(parsed.Hostname()); l != "" {
			label = l
		}
	}

	title := strings.ToUpper(label[:1]) + label[1:]

	warns.Addf("content: PLACEHOLDER content generated for %q - all extraction strategies failed; treat every field as provisional and rewrite before publishing", label)

	return types.ContentRecord{
		Title:       title,
		Description: "Discover " + label + " - Your solution for better productivity",
		Features: []string{
			"Easy to use",
			"Fast performance",
			"Reliable support",
		},
		HeroImage: "",
		Sections:  []types.Section{},
	}
}
