package branding

import (
	"context"
	"log"

	"sitecast/browser"
	"sitecast/types"
)

// Screenshotter is the slice of the browser session the color resolver
// needs.
type Screenshotter interface {
	Screenshot(ctx context.Context, url string) ([]byte, error)
}

// LogoSource yields a logo for a domain. *LogoResolver is the production
// implementation.
type LogoSource interface {
	Resolve(ctx context.Context, domain, pageURL string, warns *types.Warnings) types.Logo
}

// Assembler resolves the logo and base color palette for a site. Color
// resolution is its own small chain: screenshot dominant color, then the
// hand-picked default palette, so it never fails.
type Assembler struct {
	logos   LogoSource
	shooter Screenshotter
}

// NewAssembler wires the logo chain and a screenshot source. shooter may
// be nil when no browser session exists; the default palette then stands
// in for the screenshot-derived one.
func NewAssembler(logos LogoSource, shooter Screenshotter) *Assembler {
	return &Assembler{logos: logos, shooter: shooter}
}

// Resolve produces the logo and the base palette for a site.
func (a *Assembler) Resolve(ctx context.Context, domain, pageURL string, warns *types.Warnings) (types.Logo, types.Palette) {
	logo := a.logos.Resolve(ctx, domain, pageURL, warns)
	return logo, a.resolvePalette(ctx, pageURL, warns)
}

// Finalize merges the resolved parts into a branding record, applying
// the opportunistic CSS upgrade when style signals exist. Screenshot
// palettes tend to be washed out, so signals replace primary/accent even
// when the base palette resolved fine. Theme always derives from the
// final background.
func Finalize(logo types.Logo, palette types.Palette, styles *browser.StyleSignals) types.BrandingRecord {
	if styles != nil {
		upgraded := ApplyStyleOverrides(palette, *styles)
		if upgraded != palette {
			log.Printf("✓ Palette upgraded from CSS signals: primary %s", upgraded.Primary)
			palette = upgraded
		}
	}

	return types.BrandingRecord{
		Logo:   logo,
		Colors: palette,
		Font:   DefaultFont,
		Theme:  DetectTheme(palette.Background),
	}
}

func (a *Assembler) resolvePalette(ctx context.Context, pageURL string, warns *types.Warnings) types.Palette {
	if a.shooter == nil {
		warns.Add("branding: no browser session, using default palette")
		return DefaultPalette
	}

	screenshot, err := a.shooter.Screenshot(ctx, pageURL)
	if err != nil {
		log.Printf("✗ Screenshot failed, using default palette: %v", err)
		warns.Addf("branding: screenshot failed (%v), using default palette", err)
		return DefaultPalette
	}

	r, g, b, err := DominantColor(screenshot)
	if err != nil {
		log.Printf("✗ Color analysis failed, using default palette: %v", err)
		warns.Addf("branding: color analysis failed (%v), using default palette", err)
		return DefaultPalette
	}

	return PaletteFromDominant(r, g, b)
}
