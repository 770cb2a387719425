package renderer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitecast/types"
)

func TestRenderSubmitsPropsAndDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/render" {
			t.Errorf("path = %q; want /render", r.URL.Path)
		}
		var props types.RenderProps
		if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
			t.Errorf("request body not RenderProps: %v", err)
		}
		if props.Content.Title != "Acme" {
			t.Errorf("Title = %q; want Acme", props.Content.Title)
		}

		json.NewEncoder(w).Encode(types.RenderResult{VideoPath: "/videos/out.mp4", Duration: 30, FileSize: 1024})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	props := types.RenderProps{Content: types.ContentRecord{Title: "Acme"}, Duration: 30}

	result, err := c.Render(context.Background(), props)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if result.VideoPath != "/videos/out.mp4" || result.FileSize != 1024 {
		t.Fatalf("result = %+v; want decoded renderer response", result)
	}
}

func TestRenderRejectsFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ffmpeg crashed", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := NewClient(server.URL).Render(context.Background(), types.RenderProps{}); err == nil {
		t.Fatal("Render accepted 500 response")
	}
}

func TestNilClient(t *testing.T) {
	if c := NewClient(""); c != nil {
		t.Fatal("NewClient(\"\") returned a client; want nil")
	}

	var c *Client
	if _, err := c.Render(context.Background(), types.RenderProps{}); err == nil {
		t.Fatal("nil client Render returned no error")
	}
}
