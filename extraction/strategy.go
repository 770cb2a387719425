package extraction

import (
	"context"
	"log"

	"sitecast/types"
)

// Strategy is one way to obtain a ContentRecord for a URL. Strategies are
// tried in order; an error means "try the next one", never a pipeline
// failure. A strategy may append its own warnings (e.g. thin results)
// even when it succeeds.
type Strategy struct {
	Name   string
	Method types.ExtractionMethod
	Run    func(ctx context.Context, url string, warns *types.Warnings) (types.ContentRecord, error)
}

// Extractor walks an ordered chain of content strategies. The chain is
// terminated by the placeholder strategy, which cannot fail, so Extract
// always yields a record with a non-empty title.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor builds an extractor over the given chain.
func NewExtractor(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// Extract runs the chain until a strategy succeeds and reports which one
// produced the record. Failures are recorded as warnings in order.
func (e *Extractor) Extract(ctx context.Context, url string, warns *types.Warnings) (types.ContentRecord, types.ExtractionMethod) {
	for _, s := range e.strategies {
		content, err := s.Run(ctx, url, warns)
		if err != nil {
			log.Printf("✗ Content strategy %s failed: %v", s.Name, err)
			warns.Addf("content: %s failed: %v", s.Name, err)
			continue
		}
		log.Printf("✓ Content extracted with %s", s.Name)
		return content, s.Method
	}

	// Unreachable with the default chain: the placeholder terminal
	// strategy never returns an error.
	warns.Add("content: no strategy produced a result")
	return types.ContentRecord{Title: "Untitled"}, types.MethodPlaceholder
}
