package scriptgen

import (
	"context"
	"strings"
	"testing"

	"sitecast/types"
)

func sampleSite() *types.EnrichedSite {
	return &types.EnrichedSite{
		Content: types.ContentRecord{
			Title:       "Acme",
			Description: "Widgets as a service",
			Features:    []string{"Fast deploys", "Automatic scaling."},
		},
		Metadata: types.SiteMetadata{Industry: "tech", Domain: "acme.io"},
	}
}

func TestTemplateScript(t *testing.T) {
	script := TemplateScript(sampleSite())

	for _, want := range []string{"Meet Acme", "Widgets as a service.", "Fast deploys.", "Automatic scaling.", "Try Acme today."} {
		if !strings.Contains(script, want) {
			t.Fatalf("script = %q; want it to contain %q", script, want)
		}
	}
	if strings.Contains(script, "..") {
		t.Fatalf("script = %q; trailing periods doubled", script)
	}
}

func TestTemplateScriptDeterministic(t *testing.T) {
	site := sampleSite()
	if TemplateScript(site) != TemplateScript(site) {
		t.Fatal("TemplateScript not deterministic for identical input")
	}
}

func TestWriteWithoutKeyTemplatesAndWarns(t *testing.T) {
	w := NewWriter("")

	warns := &types.Warnings{}
	script := w.Write(context.Background(), sampleSite(), warns)

	if script != TemplateScript(sampleSite()) {
		t.Fatalf("script = %q; want template output", script)
	}
	if warns.Len() != 1 || !strings.Contains(warns.List()[0], "templated narration") {
		t.Fatalf("warnings = %v; want one template notice", warns.List())
	}
}
