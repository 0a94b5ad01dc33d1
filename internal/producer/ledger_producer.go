package producer

import (
	"context"
	"encoding/json"
	"time"

	"pressdesk/internal/service"

	"github.com/segmentio/kafka-go"
)

// LedgerProducer publishes order/ledger events for downstream consumers
// (bookkeeping exports, dashboards). Publishing is best-effort: the service
// layer never fails an operation on a publish error.
type LedgerProducer struct {
	writer *kafka.Writer
}

func NewLedgerProducer(brokers []string, topic string) *LedgerProducer {
	return &LedgerProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
}

func (p *LedgerProducer) publish(ctx context.Context, key string, kind string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(envelope{Kind: kind, Payload: payload})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *LedgerProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, e.OrderID.String(), "order.created", e)
}

func (p *LedgerProducer) PublishTransactionRecorded(ctx context.Context, e service.TransactionRecordedEvent) error {
	return p.publish(ctx, e.TransactionID.String(), "ledger.transaction.recorded", e)
}

func (p *LedgerProducer) Close() error {
	return p.writer.Close()
}
