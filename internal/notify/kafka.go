package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"ShopSphere/internal/collection"
	"ShopSphere/pkg/kit"
)

const (
	DefaultTopic   = "shopsphere.notifications"
	publishTimeout = 2 * time.Second
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes notifications as JSON, keyed by collection so each
// collection's events stay ordered within a partition. Writes are async so a
// slow broker never holds up a storefront action; failures are logged and
// dropped.
type Kafka struct {
	w   messageWriter
	log *zap.Logger
}

func NewKafka(brokers []string, topic string, log *zap.Logger) *Kafka {
	if topic == "" {
		topic = DefaultTopic
	}
	k := &Kafka{log: kit.OrNop(log)}
	k.w = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   k.completed,
	}
	return k
}

func (k *Kafka) Notify(ctx context.Context, n collection.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		k.log.Error("encode notification failed", zap.Error(err))
		return
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = k.w.WriteMessages(pctx, kafka.Message{
		Key:   []byte(n.Collection),
		Value: data,
		Time:  n.At,
	})
	if err != nil {
		k.log.Warn("publish notification failed", zap.String("id", n.ID), zap.Error(err))
	}
}

// completed reports async delivery failures.
func (k *Kafka) completed(msgs []kafka.Message, err error) {
	if err != nil {
		k.log.Warn("publish notification failed", zap.Int("messages", len(msgs)), zap.Error(err))
	}
}

func (k *Kafka) Close() error {
	return k.w.Close()
}
