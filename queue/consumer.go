package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"
)

// JobHandler processes one dequeued job. A returned error leaves the
// message unmarked so it can be retried.
type JobHandler func(ctx context.Context, job Job) error

// Consumer runs pipeline jobs from a Kafka topic as part of a consumer
// group.
type Consumer struct {
	group   sarama.ConsumerGroup
	handler JobHandler
	topic   string
	groupID string
	ready   chan struct{}
}

// NewConsumer joins the consumer group on the given brokers.
func NewConsumer(brokers []string, topic, groupID string, handler JobHandler) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to join consumer group: %w", err)
	}

	return &Consumer{
		group:   group,
		handler: handler,
		topic:   topic,
		groupID: groupID,
		ready:   make(chan struct{}),
	}, nil
}

// Start begins consuming until ctx is cancelled. It returns once the
// consumer has joined the group.
func (c *Consumer) Start(ctx context.Context) error {
	handler := &groupHandler{consumer: c, ready: c.ready}

	go func() {
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
				if err == context.Canceled {
					log.Println("Queue consumer context cancelled")
					return
				}
				log.Printf("✗ Queue consumer error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
			handler.ready = make(chan struct{})
		}
	}()

	<-c.ready
	log.Printf("✓ Queue consumer started (group: %s, topic: %s)", c.groupID, c.topic)

	go func() {
		for err := range c.group.Errors() {
			log.Printf("✗ Queue consumer error: %v", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the consumer.
func (c *Consumer) Close() error {
	log.Println("Closing queue consumer...")
	return c.group.Close()
}

// groupHandler implements sarama.ConsumerGroupHandler.
type groupHandler struct {
	consumer *Consumer
	ready    chan struct{}
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.ready)
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			log.Printf("Received job message: partition=%d, offset=%d, key=%s",
				message.Partition, message.Offset, string(message.Key))

			var job Job
			if err := json.Unmarshal(message.Value, &job); err != nil {
				// Malformed jobs are marked so they never wedge the
				// partition.
				log.Printf("✗ Dropping malformed job: %v", err)
				session.MarkMessage(message, "")
				continue
			}
			if !job.Valid() {
				log.Printf("✗ Dropping invalid job %s", job.ID)
				session.MarkMessage(message, "")
				continue
			}

			if err := h.consumer.handler(session.Context(), job); err != nil {
				log.Printf("✗ Job %s failed (left unmarked for retry): %v", job.ID, err)
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}
