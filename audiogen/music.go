package audiogen

import (
	"fmt"
	"strings"
)

// stylePrompts maps a requested music style to a generation prompt. Every
// prompt describes instrumental-only music; vocals over narration are
// never acceptable.
var stylePrompts = map[string]string{
	"pop":       "upbeat pop instrumental background music, catchy melody, energetic",
	"hip-hop":   "hip-hop instrumental beat, rhythmic drums, bass-heavy, modern",
	"rap":       "rap instrumental beat, strong drums, urban vibe, no vocals",
	"jazz":      "smooth jazz instrumental, piano and saxophone, sophisticated",
	"lo-fi":     "lo-fi chill beats, mellow and relaxing, study music vibe",
	"ambient":   "ambient atmospheric background music, ethereal and calming",
	"cinematic": "cinematic orchestral instrumental, dramatic and epic",
	"rock":      "rock instrumental background, electric guitar driven, energetic",
}

// defaultStyle is used for unknown style names.
const defaultStyle = "lo-fi"

// MusicPrompt builds the provider prompt for a style and duration.
func MusicPrompt(style string, duration float64) string {
	base, ok := stylePrompts[strings.ToLower(style)]
	if !ok {
		base = stylePrompts[defaultStyle]
	}
	return fmt.Sprintf("%s, instrumental only, no singing, no vocals, no lyrics, %.0f seconds", base, duration)
}
