package branding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sitecast/browser"
	"sitecast/types"
)

// DefaultPalette is the hand-picked fallback used when no pixel or CSS
// signal is available at all.
var DefaultPalette = types.Palette{
	Primary:    "#0066FF",
	Secondary:  "#003D99",
	Accent:     "#66B3FF",
	Background: "#FFFFFF",
}

// DefaultFont is reported when no font signal is extracted.
const DefaultFont = "system-ui, -apple-system, sans-serif"

// PaletteFromDominant derives the four-slot palette from a dominant
// pixel color: secondary is the dominant scaled down, accent scaled up
// and clamped, background chosen black or white by luminance.
func PaletteFromDominant(r, g, b uint8) types.Palette {
	background := "#000000"
	if luminanceRGB(r, g, b) > 128 {
		background = "#FFFFFF"
	}

	return types.Palette{
		Primary:    toHex(r, g, b),
		Secondary:  scaleHexChannels(r, g, b, 0.6),
		Accent:     scaleHexChannels(r, g, b, 1.4),
		Background: background,
	}
}

// ApplyStyleOverrides replaces primary (and, when a second distinct
// signal exists, accent) with live CSS color signals, in priority order:
// custom property, button background, link color. Secondary is recomputed
// by darkening the new primary. Ignores signals that do not parse as
// colors; returns the palette unchanged when none parse.
func ApplyStyleOverrides(p types.Palette, signals browser.StyleSignals) types.Palette {
	var parsed []string
	for _, raw := range []string{signals.CustomProperty, signals.ButtonColor, signals.LinkColor} {
		if hex, ok := ParseCSSColor(raw); ok {
			parsed = append(parsed, hex)
		}
	}
	if len(parsed) == 0 {
		return p
	}

	p.Primary = parsed[0]
	for _, hex := range parsed[1:] {
		if hex != p.Primary {
			p.Accent = hex
			break
		}
	}
	p.Secondary = Darken(p.Primary, 0.6)
	return p
}

// DetectTheme classifies a background color as light or dark by its
// luminance. Deterministic: the same hex always yields the same theme.
func DetectTheme(backgroundHex string) types.Theme {
	if Luminance(backgroundHex) > 128 {
		return types.ThemeLight
	}
	return types.ThemeDark
}

// Luminance computes perceived brightness (0-255) of a hex color using
// the Rec. 601 weights 0.299R + 0.587G + 0.114B.
func Luminance(hex string) float64 {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0
	}
	return luminanceRGB(r, g, b)
}

// Darken scales each channel of a hex color by factor.
func Darken(hex string, factor float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	return scaleHexChannels(r, g, b, factor)
}

// ValidHex reports whether s is a 6-hex-digit color like "#1A2B3C".
func ValidHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

var rgbPattern = regexp.MustCompile(`rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)(?:\s*,\s*([0-9.]+))?`)

// ParseCSSColor normalizes a CSS color value (#rgb, #rrggbb, rgb(),
// rgba()) into "#RRGGBB" form. Returns false for anything else,
// including fully transparent values.
func ParseCSSColor(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if strings.HasPrefix(raw, "#") {
		switch len(raw) {
		case 7:
			if ValidHex(raw) {
				return strings.ToUpper(raw), true
			}
		case 4:
			expanded := fmt.Sprintf("#%c%c%c%c%c%c", raw[1], raw[1], raw[2], raw[2], raw[3], raw[3])
			if ValidHex(expanded) {
				return strings.ToUpper(expanded), true
			}
		}
		return "", false
	}

	if m := rgbPattern.FindStringSubmatch(raw); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return "", false
		}
		if m[4] != "" {
			a, err := strconv.ParseFloat(m[4], 64)
			if err != nil || a == 0 {
				return "", false
			}
		}
		return toHex(uint8(r), uint8(g), uint8(b)), true
	}

	return "", false
}

func luminanceRGB(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

func toHex(r, g, b uint8) string {
	return strings.ToUpper(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func scaleHexChannels(r, g, b uint8, factor float64) string {
	return toHex(clampChannel(float64(r)*factor), clampChannel(float64(g)*factor), clampChannel(float64(b)*factor))
}

func clampChannel(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v + 0.5)
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	if !ValidHex(hex) {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
