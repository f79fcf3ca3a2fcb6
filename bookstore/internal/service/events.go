package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/circuit_breaker"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/kafka"
)

// Publisher emits rental lifecycle events after the owning transaction committed.
// Publishing never fails the request that caused it.
type Publisher interface {
	Publish(ctx context.Context, e kafka.Event)
}

type noopPublisher struct{}

func NoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, kafka.Event) {}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, log *zap.Logger) Publisher {
	const (
		windowSize       = 20
		openTimeout      = 10 * time.Second
		failureRatio     = 0.5
		recoveryRequests = 3
	)
	return &kafkaPublisher{
		producer: producer,
		cb:       circuit_breaker.New(windowSize, openTimeout, failureRatio, recoveryRequests),
		log:      log.Named("publisher"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, e kafka.Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	b, err := json.Marshal(e)
	if err != nil {
		p.log.Error("json.Marshal", zap.Error(err))
		return
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: kafka.RentalEventsTopic,
			Key:   sarama.StringEncoder(strconv.FormatInt(e.BookID, 10)),
			Value: sarama.ByteEncoder(b),
		})
		return err
	})
	if err != nil {
		p.log.Warn("publish event", zap.String("type", string(e.EventType)), zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, t kafka.EventType, userID, bookID, refID int64, amount float64) {
	s.events.Publish(ctx, kafka.Event{
		Timestamp: s.now().UTC(),
		EventType: t,
		UserID:    userID,
		BookID:    bookID,
		RefID:     refID,
		Amount:    amount,
	})
}

// RecordEvent stores a consumed event for the stats endpoint.
func (s *Service) RecordEvent(ctx context.Context, e kafka.Event) error {
	return s.repo.SaveEvent(ctx, model.RentalEvent{
		EventType: string(e.EventType),
		UserID:    e.UserID,
		BookID:    e.BookID,
		RefID:     e.RefID,
		Amount:    e.Amount,
		CreatedAt: e.Timestamp,
	})
}
