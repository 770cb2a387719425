package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sitecast/types"
)

// Client is a thin boundary to the external video renderer. The pipeline
// only assembles props; rendering itself is the collaborator's concern.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a renderer client, or nil when no renderer is
// configured. A nil *Client is safe to pass around; Render rejects the
// call explicitly.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Minute},
	}
}

// Render submits props and waits for the rendered video's metadata.
func (c *Client) Render(ctx context.Context, props types.RenderProps) (types.RenderResult, error) {
	var empty types.RenderResult
	if c == nil {
		return empty, fmt.Errorf("no renderer configured")
	}

	payload, err := json.Marshal(props)
	if err != nil {
		return empty, fmt.Errorf("failed to encode props: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(payload))
	if err != nil {
		return empty, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return empty, fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return empty, fmt.Errorf("renderer returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var result types.RenderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return empty, fmt.Errorf("malformed renderer response: %w", err)
	}
	return result, nil
}
