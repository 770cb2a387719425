package types

// RenderProps is the props object consumed by the external video renderer.
// Every field is always populated, possibly with empty-string sentinels;
// the renderer never sees an absent field.
type RenderProps struct {
	Content  ContentRecord  `json:"content"`
	Branding BrandingRecord `json:"branding"`
	Audio    AudioBundle    `json:"audio"`
	Duration float64        `json:"duration"`
}

// RenderResult is what the external renderer returns for a completed job.
type RenderResult struct {
	VideoPath string  `json:"video_path"`
	Duration  float64 `json:"duration"`
	FileSize  int64   `json:"file_size"`
}
