package branding

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"sitecast/config"
	"sitecast/types"
)

// commonLogoPaths are conventional locations probed under the site's own
// origin when no CDN knows the brand.
var commonLogoPaths = []string{
	"/logo.svg",
	"/logo.png",
	"/assets/logo.svg",
	"/assets/logo.png",
	"/images/logo.svg",
	"/images/logo.png",
}

// LogoResolver walks an ordered chain of logo sources and returns the
// first usable result tagged with a quality tier. No step lets an error
// escape the chain; the favicon terminal always succeeds.
type LogoResolver struct {
	clearbitBase   string
	brandfetchBase string
	faviconBase    string
	cdnClient      *http.Client
	probeClient    *http.Client
}

// NewLogoResolver returns a resolver against the public logo services.
func NewLogoResolver() *LogoResolver {
	return &LogoResolver{
		clearbitBase:   "https://logo.clearbit.com",
		brandfetchBase: "https://api.brandfetch.io/v2/brands",
		faviconBase:    "https://www.google.com/s2/favicons",
		cdnClient:      &http.Client{Timeout: config.LogoCDNTimeout},
		probeClient:    &http.Client{Timeout: config.LogoPathProbeTimeout},
	}
}

// Resolve finds a logo for the domain, falling through CDN lookups and
// origin path probes to the favicon service, which cannot fail.
func (r *LogoResolver) Resolve(ctx context.Context, domain, pageURL string, warns *types.Warnings) types.Logo {
	if logoURL := r.tryClearbit(ctx, domain); logoURL != "" {
		log.Printf("✓ Logo found via Clearbit")
		return types.Logo{URL: logoURL, Quality: types.LogoQualityHigh}
	}

	if logoURL := r.tryBrandfetch(ctx, domain); logoURL != "" {
		log.Printf("✓ Logo found via Brandfetch")
		return types.Logo{URL: logoURL, Quality: types.LogoQualityHigh}
	}

	if logoURL := r.tryCommonPaths(ctx, pageURL); logoURL != "" {
		log.Printf("✓ Logo found at conventional path: %s", logoURL)
		return types.Logo{URL: logoURL, Quality: types.LogoQualityMedium}
	}

	faviconURL := fmt.Sprintf("%s?domain=%s&sz=256", r.faviconBase, url.QueryEscape(domain))
	log.Printf("✓ Using favicon service as logo fallback")
	warns.Addf("branding: no logo found for %s, falling back to favicon; consider a manual override", domain)
	return types.Logo{URL: faviconURL, Quality: types.LogoQualityFavicon}
}

func (r *LogoResolver) tryClearbit(ctx context.Context, domain string) string {
	logoURL := r.clearbitBase + "/" + domain
	if r.headOK(ctx, r.cdnClient, logoURL) {
		return logoURL
	}
	return ""
}

// brandfetchResponse is the slice of Brandfetch's payload we care about.
type brandfetchResponse struct {
	Logos []struct {
		Formats []struct {
			Src string `json:"src"`
		} `json:"formats"`
	} `json:"logos"`
}

func (r *LogoResolver) tryBrandfetch(ctx context.Context, domain string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.brandfetchBase+"/"+domain, nil)
	if err != nil {
		return ""
	}
	resp, err := r.cdnClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload brandfetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	if len(payload.Logos) > 0 && len(payload.Logos[0].Formats) > 0 {
		return payload.Logos[0].Formats[0].Src
	}
	return ""
}

func (r *LogoResolver) tryCommonPaths(ctx context.Context, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	origin := parsed.Scheme + "://" + parsed.Host

	for _, path := range commonLogoPaths {
		candidate := origin + path
		if r.headOK(ctx, r.probeClient, candidate) {
			return candidate
		}
	}
	return ""
}

func (r *LogoResolver) headOK(ctx context.Context, client *http.Client, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
