package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sitecast/config"
	"sitecast/orchestrator"
	"sitecast/queue"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	brokers := config.KafkaBrokers()
	if len(brokers) == 0 {
		log.Fatal("KAFKA_BROKERS must be set to run the worker")
	}

	pipeline := orchestrator.New()

	handler := func(ctx context.Context, job queue.Job) error {
		log.Printf("Processing job %s: %s", job.ID, job.URL)
		result, err := pipeline.Run(ctx, job.URL, job.MusicStyle, job.Duration)
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			log.Printf("⚠ Job %s: %s", job.ID, w)
		}
		log.Printf("✓ Job %s complete (method: %s)", job.ID, result.Site.Method)
		return nil
	}

	consumer, err := queue.NewConsumer(brokers, config.KafkaJobsTopic(), config.KafkaGroupID(), handler)
	if err != nil {
		log.Fatalf("Failed to create queue consumer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("Failed to start queue consumer: %v", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.Println("Shutting down worker...")
	cancel()
	if err := consumer.Close(); err != nil {
		log.Printf("Error closing consumer: %v", err)
	}
}
