package audiogen

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"sitecast/config"
	"sitecast/types"
)

// Payload normalizes a provider response at the boundary: either raw
// audio bytes or a URL to fetch them from, plus the advertised content
// type. Provider-specific response shapes never leak past their adapter.
type Payload struct {
	Data        []byte
	URL         string
	ContentType string
}

// NarrationProvider synthesizes speech for a script.
type NarrationProvider interface {
	Name() string
	Configured() bool
	Synthesize(ctx context.Context, script string) (Payload, error)
}

// MusicProvider generates an instrumental track for a style prompt.
type MusicProvider interface {
	Name() string
	Configured() bool
	Compose(ctx context.Context, prompt string, duration float64) (Payload, error)
}

// AssetSaver is the slice of the asset store the chain needs.
type AssetSaver interface {
	SaveAudioBytes(data []byte, prefix string) (types.AudioAsset, error)
}

// Chain tries audio providers in priority order. A provider without a
// configured key warns once and is skipped; any call, download or
// validation failure advances to the next provider. Exhausting the chain
// yields the explicit empty asset (LocalPath ""), never an error.
type Chain struct {
	store    AssetSaver
	download *http.Client
}

// NewChain builds a provider chain persisting through store.
func NewChain(store AssetSaver) *Chain {
	return &Chain{
		store:    store,
		download: &http.Client{Timeout: config.AudioDownloadTimeout},
	}
}

// Narrate walks the narration providers for script.
func (c *Chain) Narrate(ctx context.Context, providers []NarrationProvider, script string, warns *types.Warnings) types.AudioAsset {
	for _, p := range providers {
		if !p.Configured() {
			warns.Addf("audio: narration provider %s has no key configured", p.Name())
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, config.NarrationTimeout)
		payload, err := p.Synthesize(callCtx, script)
		cancel()
		if err != nil {
			log.Printf("✗ Narration provider %s failed: %v", p.Name(), err)
			warns.Addf("audio: narration provider %s failed: %v", p.Name(), err)
			continue
		}

		asset, err := c.materialize(ctx, payload, "narration")
		if err != nil {
			log.Printf("✗ Narration from %s rejected: %v", p.Name(), err)
			warns.Addf("audio: narration from %s rejected: %v", p.Name(), err)
			continue
		}

		log.Printf("✓ Narration generated by %s", p.Name())
		return asset
	}
	return types.AudioAsset{LocalPath: "", StaticPath: ""}
}

// Compose walks the music providers for a style prompt.
func (c *Chain) Compose(ctx context.Context, providers []MusicProvider, prompt string, duration float64, warns *types.Warnings) types.AudioAsset {
	for _, p := range providers {
		if !p.Configured() {
			warns.Addf("audio: music provider %s has no key configured", p.Name())
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, config.MusicTimeout)
		payload, err := p.Compose(callCtx, prompt, duration)
		cancel()
		if err != nil {
			log.Printf("✗ Music provider %s failed: %v", p.Name(), err)
			warns.Addf("audio: music provider %s failed: %v", p.Name(), err)
			continue
		}

		asset, err := c.materialize(ctx, payload, "music")
		if err != nil {
			log.Printf("✗ Music from %s rejected: %v", p.Name(), err)
			warns.Addf("audio: music from %s rejected: %v", p.Name(), err)
			continue
		}

		asset.Duration = duration
		log.Printf("✓ Music generated by %s", p.Name())
		return asset
	}
	return types.AudioAsset{LocalPath: "", StaticPath: ""}
}

// materialize turns a normalized payload into a persisted asset,
// validating that the response is genuinely audio. A provider can return
// HTTP 200 with a JSON error body; size and content-type checks catch
// that here rather than at render time.
func (c *Chain) materialize(ctx context.Context, payload Payload, prefix string) (types.AudioAsset, error) {
	data := payload.Data
	contentType := payload.ContentType

	if payload.URL != "" {
		var err error
		data, contentType, err = c.fetch(ctx, payload.URL)
		if err != nil {
			return types.AudioAsset{}, err
		}
	}

	if err := validateAudio(data, contentType); err != nil {
		return types.AudioAsset{}, err
	}

	asset, err := c.store.SaveAudioBytes(data, prefix)
	if err != nil {
		return types.AudioAsset{}, err
	}
	asset.SourceURL = payload.URL
	return asset, nil
}

func (c *Chain) fetch(ctx context.Context, audioURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := c.download.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("audio download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("audio download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// validateAudio rejects bodies that cannot plausibly be audio.
func validateAudio(data []byte, contentType string) error {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "json") || strings.Contains(ct, "text/") {
		return fmt.Errorf("non-audio content type %q", contentType)
	}
	if len(data) < config.MinAudioBytes {
		return fmt.Errorf("response too small to be audio (%d bytes)", len(data))
	}
	return nil
}
