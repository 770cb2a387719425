package audiogen

import (
	"context"
	"log"

	"sitecast/beats"
	"sitecast/types"
)

// Generator coordinates narration, music and beat detection into one
// AudioBundle. Provider order is priority order; both chains may come up
// empty and the bundle is still well-formed, carrying warnings enough
// for the caller to decide between silent rendering and retrying.
type Generator struct {
	chain     *Chain
	narrators []NarrationProvider
	musicians []MusicProvider
}

// NewGenerator wires the default provider priority: MiniMax first for
// both narration and music, then the secondary providers.
func NewGenerator(store AssetSaver, minimax *Minimax, tts *OpenAISpeech, musicgen *MusicGen) *Generator {
	return &Generator{
		chain:     NewChain(store),
		narrators: []NarrationProvider{minimax, tts},
		musicians: []MusicProvider{minimax, musicgen},
	}
}

// NewGeneratorWithProviders is the injection point for tests and custom
// priority orders.
func NewGeneratorWithProviders(store AssetSaver, narrators []NarrationProvider, musicians []MusicProvider) *Generator {
	return &Generator{chain: NewChain(store), narrators: narrators, musicians: musicians}
}

// Generate produces the full audio bundle for a narration script and a
// music style. Narration timecodes are synthesized from the script text
// regardless of which provider produced the audio.
func (g *Generator) Generate(ctx context.Context, style, script string, duration float64) types.AudioBundle {
	warns := &types.Warnings{}

	log.Printf("Generating audio: %s style, %.0fs", style, duration)

	music := g.chain.Compose(ctx, g.musicians, MusicPrompt(style, duration), duration, warns)

	narrationAsset := g.chain.Narrate(ctx, g.narrators, script, warns)
	narration := types.Narration{
		AudioAsset: narrationAsset,
		Segments:   NarrationSegments(script),
	}

	beatTimes := beats.Detect(ctx, music, warns)

	log.Printf("✓ Audio bundle ready: %d narration segments, %d beats, %d warnings",
		len(narration.Segments), len(beatTimes), warns.Len())

	return types.AudioBundle{
		Music:     music,
		Narration: narration,
		Beats:     beatTimes,
		Warnings:  warns.List(),
	}
}
