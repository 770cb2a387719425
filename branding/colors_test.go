package branding

import (
	"testing"

	"sitecast/browser"
	"sitecast/types"
)

func TestParseCSSColor(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"long hex", "#1a2b3c", "#1A2B3C", true},
		{"short hex", "#fa0", "#FFAA00", true},
		{"rgb", "rgb(0, 102, 255)", "#0066FF", true},
		{"rgba", "rgba(255, 0, 0, 0.5)", "#FF0000", true},
		{"fully transparent", "rgba(0, 0, 0, 0)", "", false},
		{"transparent with decimal", "rgba(10, 20, 30, 0.0)", "", false},
		{"whitespace", "  #ffffff  ", "#FFFFFF", true},
		{"named color", "rebeccapurple", "", false},
		{"out of range", "rgb(300, 0, 0)", "", false},
		{"empty", "", "", false},
		{"garbage hex", "#zzzzzz", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ParseCSSColor(c.raw)
			if ok != c.ok || got != c.want {
				t.Fatalf("ParseCSSColor(%q) = %q, %v; want %q, %v", c.raw, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestPaletteFromDominant(t *testing.T) {
	// Bright color: background should be white, accent clamped at 255.
	p := PaletteFromDominant(200, 200, 200)
	if p.Primary != "#C8C8C8" {
		t.Fatalf("Primary = %q; want #C8C8C8", p.Primary)
	}
	if p.Secondary != "#787878" {
		t.Fatalf("Secondary = %q; want dominant scaled by 0.6", p.Secondary)
	}
	if p.Accent != "#FFFFFF" {
		t.Fatalf("Accent = %q; want channels clamped to 255", p.Accent)
	}
	if p.Background != "#FFFFFF" {
		t.Fatalf("Background = %q; want white for bright dominant", p.Background)
	}

	// Dark color: background flips to black.
	if p := PaletteFromDominant(20, 20, 40); p.Background != "#000000" {
		t.Fatalf("Background = %q; want black for dark dominant", p.Background)
	}
}

func TestDetectThemeDeterministic(t *testing.T) {
	cases := []struct {
		hex  string
		want types.Theme
	}{
		{"#FFFFFF", types.ThemeLight},
		{"#000000", types.ThemeDark},
		{"#1A1A2E", types.ThemeDark},
		{"#F5F5F5", types.ThemeLight},
	}

	for _, c := range cases {
		for i := 0; i < 3; i++ {
			if got := DetectTheme(c.hex); got != c.want {
				t.Fatalf("DetectTheme(%q) = %q; want %q", c.hex, got, c.want)
			}
		}
	}
}

func TestApplyStyleOverrides(t *testing.T) {
	base := DefaultPalette

	t.Run("custom property wins", func(t *testing.T) {
		p := ApplyStyleOverrides(base, browser.StyleSignals{
			CustomProperty: "#112233",
			ButtonColor:    "#445566",
			LinkColor:      "#778899",
		})
		if p.Primary != "#112233" {
			t.Fatalf("Primary = %q; want custom property", p.Primary)
		}
		if p.Accent != "#445566" {
			t.Fatalf("Accent = %q; want next distinct signal", p.Accent)
		}
		if p.Secondary != Darken("#112233", 0.6) {
			t.Fatalf("Secondary = %q; want darkened primary", p.Secondary)
		}
	})

	t.Run("duplicate signals keep accent", func(t *testing.T) {
		p := ApplyStyleOverrides(base, browser.StyleSignals{
			CustomProperty: "#112233",
			ButtonColor:    "#112233",
		})
		if p.Accent != base.Accent {
			t.Fatalf("Accent = %q; want untouched when no distinct second signal", p.Accent)
		}
	})

	t.Run("unparseable signals are ignored", func(t *testing.T) {
		p := ApplyStyleOverrides(base, browser.StyleSignals{
			CustomProperty: "var(--oops)",
			LinkColor:      "rgb(10, 20, 30)",
		})
		if p.Primary != "#0A141E" {
			t.Fatalf("Primary = %q; want the one parseable signal", p.Primary)
		}
	})

	t.Run("no signals leave palette unchanged", func(t *testing.T) {
		if p := ApplyStyleOverrides(base, browser.StyleSignals{}); p != base {
			t.Fatalf("palette = %+v; want unchanged %+v", p, base)
		}
	})
}

func TestDarkenClamps(t *testing.T) {
	if got := Darken("#808080", 2.5); got != "#FFFFFF" {
		t.Fatalf("Darken(#808080, 2.5) = %q; want clamp to #FFFFFF", got)
	}
	if got := Darken("not-a-color", 0.5); got != "not-a-color" {
		t.Fatalf("Darken passthrough = %q; want input unchanged", got)
	}
}
