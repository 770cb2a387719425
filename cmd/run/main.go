package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"sitecast/orchestrator"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		musicStyle = flag.String("style", "", "music style (upbeat, calm, corporate, energetic, ...)")
		duration   = flag.Float64("duration", 30, "target video duration in seconds")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: run [flags] <url>")
	}
	pageURL := flag.Arg(0)

	pipeline := orchestrator.New()

	result, err := pipeline.Run(context.Background(), pageURL, *musicStyle, *duration)
	if err != nil {
		log.Fatalf("✗ Pipeline failed: %v", err)
	}

	for _, w := range result.Warnings {
		log.Printf("⚠ %s", w)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}
}
