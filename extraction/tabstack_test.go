package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTabstack(url string) *TabstackClient {
	c := NewTabstackClient("test-key")
	c.endpoint = url
	return c
}

func TestTabstackExtract(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		if body["url"] != "https://acme.io" {
			t.Errorf("request url = %v; want https://acme.io", body["url"])
		}
		if _, ok := body["json_schema"]; !ok {
			t.Error("request missing json_schema")
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"title":       "Acme",
			"description": "Widgets as a service",
			"features":    []string{"Fast", "Cheap", "Good"},
			"heroImage":   "https://acme.io/hero.png",
			"sections":    []map[string]string{{"heading": "Why", "text": "Because."}},
		})
	}))
	defer server.Close()

	record, err := newTestTabstack(server.URL).Extract(context.Background(), "https://acme.io")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("Authorization = %q; want bearer key", gotAuth)
	}
	if record.Title != "Acme" || record.Description != "Widgets as a service" {
		t.Fatalf("record = %+v; want normalized fields", record)
	}
	if len(record.Features) != 3 {
		t.Fatalf("Features = %v; want 3", record.Features)
	}
	if len(record.Sections) != 1 || record.Sections[0].Heading != "Why" {
		t.Fatalf("Sections = %+v; want one section", record.Sections)
	}
}

func TestTabstackExtractRejectsIncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"title": "Acme",
			// description and features missing
		})
	}))
	defer server.Close()

	if _, err := newTestTabstack(server.URL).Extract(context.Background(), "https://acme.io"); err == nil {
		t.Fatal("Extract accepted response missing required fields")
	}
}

func TestTabstackExtractRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestTabstack(server.URL).Extract(context.Background(), "https://acme.io"); err == nil {
		t.Fatal("Extract accepted non-200 status")
	}
}

func TestTabstackExtractWithoutKey(t *testing.T) {
	c := NewTabstackClient("")
	if _, err := c.Extract(context.Background(), "https://acme.io"); err == nil {
		t.Fatal("Extract succeeded without an API key")
	}
}
