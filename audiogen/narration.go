package audiogen

import (
	"strings"

	"sitecast/config"
	"sitecast/types"
)

// NarrationSegments synthesizes timecodes for a script. This is a
// textual approximation, not waveform analysis: the script is split on
// sentence terminators, each sentence's duration is estimated at the
// assumed speaking rate, and a fixed pause separates segments. Segment
// starts are strictly increasing and segments never overlap.
func NarrationSegments(script string) []types.NarrationSegment {
	var segments []types.NarrationSegment

	currentTime := 0.0
	for _, sentence := range splitSentences(script) {
		words := len(strings.Fields(sentence))
		if words == 0 {
			continue
		}
		duration := float64(words) / config.WordsPerSecond

		segments = append(segments, types.NarrationSegment{
			Start: currentTime,
			End:   currentTime + duration,
			Text:  sentence,
		})
		currentTime += duration + config.SentencePause
	}

	return segments
}

// splitSentences breaks text on ., ! and ? runs, dropping empties.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		switch r {
		case '.', '!', '?':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return sentences
}
