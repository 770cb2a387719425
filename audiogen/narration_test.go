package audiogen

import (
	"math"
	"strings"
	"testing"

	"sitecast/config"
)

func TestNarrationSegments(t *testing.T) {
	script := "Meet Acme. Widgets built for speed! Try it today?"

	segments := NarrationSegments(script)
	if len(segments) != 3 {
		t.Fatalf("segments = %d; want 3", len(segments))
	}

	wantTexts := []string{"Meet Acme", "Widgets built for speed", "Try it today"}
	for i, want := range wantTexts {
		if segments[i].Text != want {
			t.Fatalf("segments[%d].Text = %q; want %q", i, segments[i].Text, want)
		}
	}

	// First segment starts at zero; each duration is words / rate.
	if segments[0].Start != 0 {
		t.Fatalf("segments[0].Start = %v; want 0", segments[0].Start)
	}
	wantEnd := 2.0 / config.WordsPerSecond
	if math.Abs(segments[0].End-wantEnd) > 1e-9 {
		t.Fatalf("segments[0].End = %v; want %v", segments[0].End, wantEnd)
	}

	// Starts strictly increase and every gap is the sentence pause.
	for i := 1; i < len(segments); i++ {
		if segments[i].Start <= segments[i-1].Start {
			t.Fatalf("segment starts not increasing: %v then %v", segments[i-1].Start, segments[i].Start)
		}
		gap := segments[i].Start - segments[i-1].End
		if math.Abs(gap-config.SentencePause) > 1e-9 {
			t.Fatalf("gap between segments %d and %d = %v; want %v", i-1, i, gap, config.SentencePause)
		}
	}
}

func TestNarrationSegmentsEmptyScript(t *testing.T) {
	if got := NarrationSegments(""); len(got) != 0 {
		t.Fatalf("segments = %v; want none for empty script", got)
	}
	if got := NarrationSegments("... !!! ???"); len(got) != 0 {
		t.Fatalf("segments = %v; want none for punctuation-only script", got)
	}
}

func TestMusicPrompt(t *testing.T) {
	got := MusicPrompt("jazz", 30)
	if !strings.Contains(got, "jazz") {
		t.Fatalf("MusicPrompt = %q; want jazz base prompt", got)
	}
	if !strings.Contains(got, "no vocals") || !strings.Contains(got, "30 seconds") {
		t.Fatalf("MusicPrompt = %q; want instrumental constraint and duration", got)
	}

	// Unknown styles fall back to lo-fi.
	if got := MusicPrompt("polka-metal", 15); !strings.Contains(got, "lo-fi") {
		t.Fatalf("MusicPrompt fallback = %q; want lo-fi base", got)
	}

	// Style lookup is case-insensitive.
	if MusicPrompt("JAZZ", 30) != MusicPrompt("jazz", 30) {
		t.Fatal("MusicPrompt is case-sensitive; want case-insensitive style lookup")
	}
}
