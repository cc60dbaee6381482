package kafka

import (
	"context"
	"time"

	k "github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
	Close() error
}

type Writer struct {
	w *k.Writer
}

// NewWriter returns an async producer; nothing blocks the request path
// waiting for broker acks.
func NewWriter(bootstrap, topic string) *Writer {
	w := &k.Writer{
		Addr:         k.TCP(bootstrap),
		Topic:        topic,
		Balancer:     &k.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: k.RequireNone,
		Async:        true,
	}
	return &Writer{w: w}
}

func (w *Writer) Close() error { return w.w.Close() }

func (w *Writer) Publish(ctx context.Context, key string, value []byte) error {
	return w.w.WriteMessages(ctx, k.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

// Noop stands in when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, []byte) error { return nil }
func (Noop) Close() error                                  { return nil }
