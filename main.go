package main

import (
	"log"
	"net/http"
	"os"

	"sitecast/api"
	"sitecast/config"
	"sitecast/orchestrator"
	"sitecast/queue"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	pipeline := orchestrator.New()

	var producer *queue.Producer
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		p, err := queue.NewProducer(brokers, config.KafkaJobsTopic())
		if err != nil {
			log.Printf("Warning: failed to init job queue producer: %v (async submission disabled)", err)
		} else {
			producer = p
			defer producer.Close()
		}
	} else {
		log.Println("Job queue not configured; async submission disabled")
	}

	r := api.NewRouter(pipeline, producer)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /health")
	log.Println("  POST /api/extract")
	log.Println("  POST /api/audio")
	log.Println("  POST /api/pipeline")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
