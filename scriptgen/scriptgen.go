// Package scriptgen turns extracted site content into a short narration
// script with a problem/solution/call-to-action arc. Generation uses
// Cohere when configured and falls back to a deterministic template, so
// the audio pipeline always has a script to work with.
package scriptgen

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"sitecast/types"
)

const cohereModel = "command-r"

// Writer produces narration scripts.
type Writer struct {
	client *cohereclient.Client
}

// NewWriter returns a script writer. With an empty API key the writer
// only templates.
func NewWriter(apiKey string) *Writer {
	if apiKey == "" {
		return &Writer{}
	}

	// Force HTTP/1.1; the Cohere endpoint intermittently breaks HTTP/2
	// connections under some proxies.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}

	return &Writer{
		client: cohereclient.NewClient(
			cohereclient.WithToken(apiKey),
			cohereclient.WithHTTPClient(httpClient),
		),
	}
}

// Write produces a narration script for the site. LLM failures degrade
// to the template, never to an error.
func (w *Writer) Write(ctx context.Context, site *types.EnrichedSite, warns *types.Warnings) string {
	if w.client == nil {
		warns.Add("script: no script-generation key configured, using templated narration")
		return TemplateScript(site)
	}

	script, err := w.generate(ctx, site)
	if err != nil {
		log.Printf("✗ Script generation failed, templating instead: %v", err)
		warns.Addf("script: generation failed (%v), using templated narration", err)
		return TemplateScript(site)
	}

	log.Printf("✓ Narration script generated (%d chars)", len(script))
	return script
}

func (w *Writer) generate(ctx context.Context, site *types.EnrichedSite) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	model := cohereModel
	prompt := buildPrompt(site)

	resp, err := w.client.Chat(callCtx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &model,
	})
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	script := strings.TrimSpace(resp.Text)
	if script == "" {
		return "", fmt.Errorf("model returned an empty script")
	}
	return script, nil
}

func buildPrompt(site *types.EnrichedSite) string {
	var b strings.Builder
	b.WriteString("Write a 30-second promotional video narration script for the product below. ")
	b.WriteString("Structure: hook on the audience's problem, introduce the product as the solution, ")
	b.WriteString("highlight the key features, close with a call to action. ")
	b.WriteString("Plain spoken prose only, no stage directions, no headings.\n\n")
	fmt.Fprintf(&b, "Product: %s\n", site.Content.Title)
	fmt.Fprintf(&b, "Description: %s\n", site.Content.Description)
	if len(site.Content.Features) > 0 {
		fmt.Fprintf(&b, "Features: %s\n", strings.Join(site.Content.Features, "; "))
	}
	fmt.Fprintf(&b, "Industry: %s\n", site.Metadata.Industry)
	return b.String()
}

// TemplateScript assembles a deterministic narration script from the
// extracted content alone.
func TemplateScript(site *types.EnrichedSite) string {
	title := site.Content.Title
	var b strings.Builder

	fmt.Fprintf(&b, "Looking for a better way? Meet %s. ", title)
	if site.Content.Description != "" {
		b.WriteString(site.Content.Description)
		if !strings.HasSuffix(site.Content.Description, ".") {
			b.WriteString(".")
		}
		b.WriteString(" ")
	}
	for _, feature := range site.Content.Features {
		fmt.Fprintf(&b, "%s. ", strings.TrimRight(feature, "."))
	}
	fmt.Fprintf(&b, "Try %s today.", title)

	return b.String()
}
