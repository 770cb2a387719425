package types

// AudioAsset represents one downloaded audio file. An empty LocalPath is
// the explicit "not produced" state; callers must check it before use.
type AudioAsset struct {
	SourceURL  string  `json:"source_url,omitempty"`
	LocalPath  string  `json:"local_path"`
	StaticPath string  `json:"static_path"`
	Duration   float64 `json:"duration,omitempty"`
}

// NarrationSegment is one timecoded span of narration text. Segments are
// synthesized from the script at an assumed speaking rate, not measured
// from the audio waveform.
type NarrationSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Narration is a narration asset plus its timecoded segments.
type Narration struct {
	AudioAsset
	Segments []NarrationSegment `json:"segments"`
}

// AudioBundle is the aggregate result of one audio generation call.
// Beats are ascending timestamps in seconds and may be empty.
type AudioBundle struct {
	Music     AudioAsset `json:"music"`
	Narration Narration  `json:"narration"`
	Beats     []float64  `json:"beats"`
	Warnings  []string   `json:"warnings"`
}
