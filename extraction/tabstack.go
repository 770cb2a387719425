package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sitecast/config"
	"sitecast/types"
)

// TabstackClient calls the structured-extraction API: it sends the target
// URL plus a JSON schema of the desired fields and receives matching JSON.
type TabstackClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewTabstackClient returns a client using the configured API key. An
// empty key is allowed; the strategy then fails immediately with a
// configuration warning and the chain advances.
func NewTabstackClient(apiKey string) *TabstackClient {
	return &TabstackClient{
		apiKey:   apiKey,
		endpoint: config.TabstackEndpoint(),
		client:   &http.Client{Timeout: config.TabstackTimeout},
	}
}

// Strategy adapts the client into a chain entry.
func (t *TabstackClient) Strategy() Strategy {
	return Strategy{
		Name:   "tabstack",
		Method: types.MethodTabstack,
		Run: func(ctx context.Context, url string, _ *types.Warnings) (types.ContentRecord, error) {
			return t.Extract(ctx, url)
		},
	}
}

// tabstackResponse mirrors the provider's payload. Normalizing here keeps
// provider quirks out of the orchestration logic.
type tabstackResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	HeroImage   string   `json:"heroImage"`
	Sections    []struct {
		Heading string `json:"heading"`
		Text    string `json:"text"`
	} `json:"sections"`
}

// Extract requests structured content for url. A missing required field
// in the response counts as failure, not success.
func (t *TabstackClient) Extract(ctx context.Context, url string) (types.ContentRecord, error) {
	var empty types.ContentRecord

	if t.apiKey == "" {
		return empty, fmt.Errorf("TABSTACK_API_KEY not set")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"url":         url,
		"json_schema": extractionSchema,
	})
	if err != nil {
		return empty, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return empty, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return empty, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return empty, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var raw tabstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return empty, fmt.Errorf("malformed response: %w", err)
	}

	if raw.Title == "" || raw.Description == "" || len(raw.Features) == 0 {
		return empty, fmt.Errorf("response missing required fields (title/description/features)")
	}

	record := types.ContentRecord{
		Title:       raw.Title,
		Description: raw.Description,
		Features:    raw.Features,
		HeroImage:   raw.HeroImage,
	}
	for _, s := range raw.Sections {
		record.Sections = append(record.Sections, types.Section{Heading: s.Heading, Text: s.Text})
	}
	return record, nil
}

// extractionSchema describes the fields we want back from the provider.
var extractionSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title":       map[string]interface{}{"type": "string", "description": "The main title or product name"},
		"description": map[string]interface{}{"type": "string", "description": "A brief description or value proposition"},
		"features": map[string]interface{}{
			"type":        "array",
			"description": "3-5 key features or benefits",
			"items":       map[string]interface{}{"type": "string"},
		},
		"heroImage": map[string]interface{}{"type": "string", "description": "URL of the main hero or banner image"},
		"sections": map[string]interface{}{
			"type":        "array",
			"description": "Main content sections",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"heading": map[string]interface{}{"type": "string"},
					"text":    map[string]interface{}{"type": "string"},
				},
			},
		},
	},
	"required": []string{"title", "description", "features"},
}
