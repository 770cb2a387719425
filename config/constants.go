package config

import "time"

// Extraction timeouts
const (
	// TabstackTimeout bounds the structured-extraction API call
	TabstackTimeout = 30 * time.Second

	// PageNavigationTimeout bounds headless-browser page loads
	PageNavigationTimeout = 15 * time.Second

	// PageSettleDelay is the wait after navigation for dynamic content
	PageSettleDelay = 2 * time.Second

	// LogoCDNTimeout bounds Clearbit/Brandfetch lookups
	LogoCDNTimeout = 5 * time.Second

	// LogoPathProbeTimeout bounds conventional-path HEAD probes
	LogoPathProbeTimeout = 3 * time.Second

	// LogoDownloadTimeout bounds the logo persistence download
	LogoDownloadTimeout = 10 * time.Second
)

// Content extraction limits
const (
	// MaxFeatures caps the number of extracted feature bullets
	MaxFeatures = 5

	// MinFeatureLength filters out trivially short list items
	MinFeatureLength = 6

	// MaxFeatureLength filters out paragraph-length list items
	MaxFeatureLength = 119

	// MaxSections caps the number of extracted page sections
	MaxSections = 6
)

// Audio generation
const (
	// NarrationTimeout bounds one text-to-speech provider call
	NarrationTimeout = 60 * time.Second

	// MusicTimeout bounds one music generation provider call
	MusicTimeout = 120 * time.Second

	// AudioDownloadTimeout bounds fetching a provider's audio URL
	AudioDownloadTimeout = 60 * time.Second

	// MinAudioBytes is the smallest response body accepted as real audio.
	// Providers can return HTTP 200 with a JSON error body; anything under
	// this threshold is treated as non-audio.
	MinAudioBytes = 10_000

	// WordsPerSecond is the assumed speaking rate for narration timecodes
	// (150 words per minute)
	WordsPerSecond = 2.5

	// SentencePause is the assumed gap inserted between narration segments
	SentencePause = 0.5

	// DefaultVideoDuration is the target length when a job omits one
	DefaultVideoDuration = 30.0
)

// Beat detection
const (
	// DefaultBPM is the assumed tempo when no analysis tool is available
	DefaultBPM = 120

	// DefaultMusicDuration is the assumed track length when probing fails
	DefaultMusicDuration = 60.0

	// PlaceholderBeatStart is the first synthetic beat when no music exists
	PlaceholderBeatStart = 1.0

	// PlaceholderBeatSpacing is the gap between synthetic beats
	PlaceholderBeatSpacing = 1.2

	// PlaceholderBeatCount is how many synthetic beats are generated
	PlaceholderBeatCount = 50
)

// Local persistence layout
const (
	// PublicDir is the asset root served to the downstream renderer
	PublicDir = "public"

	// ImagesDir holds persisted logos, relative to PublicDir
	ImagesDir = "images"

	// AudioDir holds downloaded audio, relative to PublicDir
	AudioDir = "audio"
)
