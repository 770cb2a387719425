package beats

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"

	"sitecast/config"
	"sitecast/types"
)

func TestPlaceholderSeries(t *testing.T) {
	beats := Placeholder()

	if len(beats) != config.PlaceholderBeatCount {
		t.Fatalf("len = %d; want %d", len(beats), config.PlaceholderBeatCount)
	}
	if beats[0] != config.PlaceholderBeatStart {
		t.Fatalf("beats[0] = %v; want %v", beats[0], config.PlaceholderBeatStart)
	}
	for i := 1; i < len(beats); i++ {
		gap := beats[i] - beats[i-1]
		if math.Abs(gap-config.PlaceholderBeatSpacing) > 1e-9 {
			t.Fatalf("gap at %d = %v; want %v", i, gap, config.PlaceholderBeatSpacing)
		}
	}
}

func TestFixedTempo(t *testing.T) {
	beats := FixedTempo(120, 2)

	// 120 BPM = one beat every 0.5s; [0, 2) holds four.
	want := []float64{0, 0.5, 1, 1.5}
	if !reflect.DeepEqual(beats, want) {
		t.Fatalf("FixedTempo(120, 2) = %v; want %v", beats, want)
	}

	if got := FixedTempo(120, 0); len(got) != 0 {
		t.Fatalf("FixedTempo(120, 0) = %v; want none", got)
	}
}

func TestParseSilenceEnds(t *testing.T) {
	output := `[silencedetect @ 0x7f] silence_start: 1.2
[silencedetect @ 0x7f] silence_end: 1.84 | silence_duration: 0.645
frame=  100 fps=0.0
[silencedetect @ 0x7f] silence_end: 4.5 | silence_duration: 0.2
[silencedetect @ 0x7f] silence_end: 9.0 | silence_duration: 0.11`

	want := []float64{1.84, 4.5, 9}
	if got := ParseSilenceEnds(output); !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSilenceEnds = %v; want %v", got, want)
	}

	if got := ParseSilenceEnds("no silences here"); len(got) != 0 {
		t.Fatalf("ParseSilenceEnds = %v; want none", got)
	}
}

func TestDetectWithoutMusicAsset(t *testing.T) {
	warns := &types.Warnings{}
	beats := Detect(context.Background(), types.AudioAsset{}, warns)

	if !reflect.DeepEqual(beats, Placeholder()) {
		t.Fatalf("beats = %v; want placeholder series", beats)
	}
	if warns.Len() != 1 || !strings.Contains(warns.List()[0], "no music asset") {
		t.Fatalf("warnings = %v; want one no-asset notice", warns.List())
	}
}
