package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/service"
	"github.com/readwell/library-service/pkg/circuit_breaker"
	"github.com/readwell/library-service/pkg/kafka"
)

// Publisher pushes loan events to the loan-events topic. The circuit
// breaker keeps a broker outage from slowing every borrow and return;
// callers already treat publishing as best effort.
type Publisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

var _ service.EventPublisher = (*Publisher)(nil)

func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 5),
		log:      log.Named("events"),
	}
}

func (p *Publisher) PublishLoanEvent(_ context.Context, ev model.LoanEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.cb.Call(func() error {
		msg := &sarama.ProducerMessage{
			Topic: kafka.LoanEventsTopic,
			Key:   sarama.StringEncoder(ev.BookUid),
			Value: sarama.ByteEncoder(data),
		}
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}
