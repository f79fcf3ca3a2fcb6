package handler

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/kafka"
)

type recordEvent func(ctx context.Context, event kafka.Event) error

// Consumer feeds rental lifecycle events into the stats store.
type Consumer struct {
	recordHandler recordEvent
	log           *zap.Logger
	ready         chan bool
	readyOnce     sync.Once
}

func NewConsumer(record recordEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

// Ready is closed once the first session has been set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Setup runs again on every rebalance.
	consumer.readyOnce.Do(func() { close(consumer.ready) })
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(session.Context(), event); err != nil {
				consumer.log.Error("consumer.recordHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("message claimed",
				zap.String("event_type", string(event.EventType)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic),
			)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
