package audiogen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	minimaxMusicEndpoint  = "https://api.minimax.chat/v1/music/generation"
	minimaxSpeechEndpoint = "https://api.minimax.chat/v1/text_to_speech"
)

// Minimax is the primary audio provider, serving both music generation
// and text-to-speech. Preferred for quality and cost.
type Minimax struct {
	apiKey         string
	groupID        string
	musicEndpoint  string
	speechEndpoint string
	client         *http.Client
}

// NewMinimax builds the adapter. groupID is optional account scoping.
func NewMinimax(apiKey, groupID string) *Minimax {
	return &Minimax{
		apiKey:         apiKey,
		groupID:        groupID,
		musicEndpoint:  minimaxMusicEndpoint,
		speechEndpoint: minimaxSpeechEndpoint,
		client:         &http.Client{},
	}
}

func (m *Minimax) Name() string     { return "minimax" }
func (m *Minimax) Configured() bool { return m.apiKey != "" }

// minimaxResponse covers both the music and speech payloads. BaseResp
// carries the provider's own status code, which distinguishes success
// from billing and quota errors even on HTTP 200.
type minimaxResponse struct {
	AudioURL string `json:"audio_url"`
	BaseResp struct {
		StatusCode int    `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
}

// Compose requests an instrumental track.
func (m *Minimax) Compose(ctx context.Context, prompt string, duration float64) (Payload, error) {
	return m.call(ctx, m.musicEndpoint, map[string]interface{}{
		"model":        "music-2.5",
		"prompt":       prompt,
		"duration":     duration,
		"instrumental": true,
	})
}

// Synthesize requests narration speech for the script.
func (m *Minimax) Synthesize(ctx context.Context, script string) (Payload, error) {
	return m.call(ctx, m.speechEndpoint, map[string]interface{}{
		"model":    "speech-2.5-hd",
		"text":     script,
		"voice_id": "professional-neutral",
		"speed":    1.0,
	})
}

func (m *Minimax) call(ctx context.Context, endpoint string, body map[string]interface{}) (Payload, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Payload{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if m.groupID != "" {
		req.Header.Set("X-Group-Id", m.groupID)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Payload{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	var decoded minimaxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Payload{}, fmt.Errorf("malformed response: %w", err)
	}
	if decoded.BaseResp.StatusCode != 0 {
		return Payload{}, fmt.Errorf("provider error %d: %s", decoded.BaseResp.StatusCode, decoded.BaseResp.StatusMsg)
	}
	if decoded.AudioURL == "" {
		return Payload{}, fmt.Errorf("response carried no audio URL")
	}

	return Payload{URL: decoded.AudioURL}, nil
}
