package renderer

import "sitecast/types"

// BuildProps assembles the props object the external video renderer
// consumes. Every field is populated: slices become empty slices and
// missing assets keep their empty-string sentinels, so the renderer
// never has to null-check.
func BuildProps(site *types.EnrichedSite, audio types.AudioBundle, duration float64) types.RenderProps {
	content := site.Content
	if content.Features == nil {
		content.Features = []string{}
	}
	if content.Sections == nil {
		content.Sections = []types.Section{}
	}

	if audio.Narration.Segments == nil {
		audio.Narration.Segments = []types.NarrationSegment{}
	}
	if audio.Beats == nil {
		audio.Beats = []float64{}
	}
	if audio.Warnings == nil {
		audio.Warnings = []string{}
	}

	return types.RenderProps{
		Content:  content,
		Branding: site.Branding,
		Audio:    audio,
		Duration: duration,
	}
}
