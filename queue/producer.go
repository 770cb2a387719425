package queue

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"sitecast/config"
)

// Producer submits pipeline jobs to the queue.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects a synchronous producer to the brokers.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect producer: %w", err)
	}
	return &Producer{producer: producer, topic: topic}, nil
}

// Submit enqueues one job, assigning an ID when the caller left it empty,
// and returns the job as submitted.
func (p *Producer) Submit(job Job) (Job, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Duration <= 0 {
		job.Duration = config.DefaultVideoDuration
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return Job{}, fmt.Errorf("failed to encode job: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(job.ID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return Job{}, fmt.Errorf("failed to send job: %w", err)
	}

	log.Printf("✓ Job %s queued (partition=%d, offset=%d)", job.ID, partition, offset)
	return job, nil
}

// Close releases the producer connection.
func (p *Producer) Close() error {
	return p.producer.Close()
}
