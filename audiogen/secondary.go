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
	openAISpeechEndpoint = "https://api.openai.com/v1/audio/speech"
	musicGenEndpoint     = "https://api.replicate.com/v1/models/meta/musicgen/predictions"
)

// OpenAISpeech is the secondary narration provider. It returns raw MP3
// bytes rather than a URL.
type OpenAISpeech struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewOpenAISpeech builds the adapter.
func NewOpenAISpeech(apiKey string) *OpenAISpeech {
	return &OpenAISpeech{apiKey: apiKey, endpoint: openAISpeechEndpoint, client: &http.Client{}}
}

func (o *OpenAISpeech) Name() string     { return "openai-tts" }
func (o *OpenAISpeech) Configured() bool { return o.apiKey != "" }

// Synthesize requests MP3 narration for the script.
func (o *OpenAISpeech) Synthesize(ctx context.Context, script string) (Payload, error) {
	body, err := json.Marshal(map[string]interface{}{
		"model":           "tts-1",
		"input":           script,
		"voice":           "alloy",
		"response_format": "mp3",
	})
	if err != nil {
		return Payload{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return Payload{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Payload{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read audio body: %w", err)
	}
	return Payload{Data: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

// MusicGen is the secondary music provider, driving Meta's MusicGen
// model through Replicate's synchronous prediction API.
type MusicGen struct {
	apiToken string
	endpoint string
	client   *http.Client
}

// NewMusicGen builds the adapter.
func NewMusicGen(apiToken string) *MusicGen {
	return &MusicGen{apiToken: apiToken, endpoint: musicGenEndpoint, client: &http.Client{}}
}

func (g *MusicGen) Name() string     { return "replicate-musicgen" }
func (g *MusicGen) Configured() bool { return g.apiToken != "" }

// musicGenResponse normalizes the prediction payload. Output has varied
// between a bare URL string and an object across model versions; both
// shapes are handled here so the chain never sees the difference.
type musicGenResponse struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Output json.RawMessage `json:"output"`
}

func (r *musicGenResponse) outputURL() string {
	var asString string
	if err := json.Unmarshal(r.Output, &asString); err == nil {
		return asString
	}
	var asObject struct {
		Audio string `json:"audio"`
	}
	if err := json.Unmarshal(r.Output, &asObject); err == nil {
		return asObject.Audio
	}
	return ""
}

// Compose requests an instrumental track and waits for the prediction.
func (g *MusicGen) Compose(ctx context.Context, prompt string, duration float64) (Payload, error) {
	body, err := json.Marshal(map[string]interface{}{
		"input": map[string]interface{}{
			"prompt":        prompt,
			"duration":      int(duration),
			"output_format": "mp3",
		},
	})
	if err != nil {
		return Payload{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return Payload{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait")

	resp, err := g.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Payload{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	var decoded musicGenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Payload{}, fmt.Errorf("malformed response: %w", err)
	}
	if decoded.Error != "" {
		return Payload{}, fmt.Errorf("provider error: %s", decoded.Error)
	}
	if decoded.Status != "succeeded" {
		return Payload{}, fmt.Errorf("prediction ended in status %q", decoded.Status)
	}

	audioURL := decoded.outputURL()
	if audioURL == "" {
		return Payload{}, fmt.Errorf("prediction carried no audio output")
	}
	return Payload{URL: audioURL}, nil
}
