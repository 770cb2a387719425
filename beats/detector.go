package beats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"sitecast/config"
	"sitecast/types"
)

var silenceEndPattern = regexp.MustCompile(`silence_end: ([\d.]+)`)

// Detect derives rhythmic timecodes from a music file by walking an
// ordered chain of strategies: the aubio beat tracker if installed, an
// ffmpeg silence-gap heuristic, and finally a fixed-tempo series. When
// the music asset was never produced, detection is skipped entirely and
// a synthetic placeholder series keeps downstream beat-sync operable.
func Detect(ctx context.Context, music types.AudioAsset, warns *types.Warnings) []float64 {
	if music.LocalPath == "" {
		warns.Add("beats: no music asset available, synthesized placeholder beat series")
		return Placeholder()
	}

	if beats, err := aubioBeats(ctx, music.LocalPath); err != nil {
		log.Printf("✗ aubio beat detection unavailable: %v", err)
		warns.Addf("beats: aubio detection failed (%v), trying silence analysis", err)
	} else if len(beats) > 0 {
		log.Printf("✓ Detected %d beats with aubio", len(beats))
		return beats
	}

	if beats, err := silenceBeats(music.LocalPath); err != nil {
		log.Printf("✗ ffmpeg silence analysis failed: %v", err)
		warns.Addf("beats: silence analysis failed (%v), using fixed tempo", err)
	} else if len(beats) > 0 {
		log.Printf("✓ Detected %d beats from silence gaps", len(beats))
		return beats
	}

	duration := music.Duration
	if duration <= 0 {
		duration = probeDuration(music.LocalPath)
	}
	warns.Addf("beats: falling back to fixed %d BPM over %.0fs", config.DefaultBPM, duration)
	log.Printf("✓ Generated fixed-tempo beats (%d BPM)", config.DefaultBPM)
	return FixedTempo(config.DefaultBPM, duration)
}

// aubioBeats shells out to the aubio CLI, which prints one timestamp per
// line. A missing binary is an error like any other; the chain advances.
func aubioBeats(ctx context.Context, audioPath string) ([]float64, error) {
	if _, err := exec.LookPath("aubio"); err != nil {
		return nil, fmt.Errorf("aubio not installed")
	}

	out, err := exec.CommandContext(ctx, "aubio", "beat", audioPath).Output()
	if err != nil {
		return nil, fmt.Errorf("aubio beat failed: %w", err)
	}

	var beats []float64
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && v > 0 {
			beats = append(beats, round2(v))
		}
	}
	return beats, nil
}

// silenceBeats treats each silence-end timestamp reported by ffmpeg's
// silencedetect filter as a candidate beat. Crude, but good enough to
// sync visual transitions.
func silenceBeats(audioPath string) ([]float64, error) {
	var stderr bytes.Buffer
	err := ffmpeg.Input(audioPath).
		Output("pipe:", ffmpeg.KwArgs{"af": "silencedetect=noise=-30dB:d=0.1", "f": "null"}).
		WithErrorOutput(&stderr).
		Run()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg silencedetect failed: %w", err)
	}

	return ParseSilenceEnds(stderr.String()), nil
}

// ParseSilenceEnds extracts silence_end timestamps from ffmpeg filter
// output, in order.
func ParseSilenceEnds(ffmpegOutput string) []float64 {
	var beats []float64
	for _, m := range silenceEndPattern.FindAllStringSubmatch(ffmpegOutput, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			beats = append(beats, round2(v))
		}
	}
	return beats
}

// FixedTempo generates evenly spaced beats for a tempo and duration.
func FixedTempo(bpm int, durationSeconds float64) []float64 {
	interval := 60.0 / float64(bpm)
	var beats []float64
	for t := 0.0; t < durationSeconds; t += interval {
		beats = append(beats, round2(t))
	}
	return beats
}

// Placeholder is the synthetic series used when no music exists: fixed
// spacing from a fixed start, keeping beat-sync consumers operable.
func Placeholder() []float64 {
	beats := make([]float64, 0, config.PlaceholderBeatCount)
	for i := 0; i < config.PlaceholderBeatCount; i++ {
		beats = append(beats, round2(config.PlaceholderBeatStart+float64(i)*config.PlaceholderBeatSpacing))
	}
	return beats
}

// probeDuration asks ffprobe for the track length, falling back to the
// assumed default when probing fails.
func probeDuration(audioPath string) float64 {
	probe, err := ffmpeg.Probe(audioPath)
	if err != nil {
		return config.DefaultMusicDuration
	}

	var parsed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probe), &parsed); err != nil {
		return config.DefaultMusicDuration
	}

	d, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil || d <= 0 {
		return config.DefaultMusicDuration
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
