// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"cartflow/pkg/order"
)

// Topic carries order-created events.
const Topic = "cartflow.orders.created"

// Publisher writes order-created events. A Publisher built from an
// empty broker list is disabled and publishes nothing.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher parses a comma-separated broker list. An empty list
// yields a disabled publisher.
func NewPublisher(brokersCSV string) *Publisher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &Publisher{}
	}
	return &Publisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}}
}

// Enabled reports whether events will actually be written.
func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// OrderCreated publishes the order keyed by its ID. Disabled publishers
// return nil.
func (p *Publisher) OrderCreated(ctx context.Context, o order.Order) error {
	if p.writer == nil {
		return nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
