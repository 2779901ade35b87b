package repository

import (
	"context"
	"fmt"

	"WyckoffLab/internal/domain/models"
	domrepo "WyckoffLab/internal/domain/repository"
	pkgkafka "WyckoffLab/pkg/kafka"
)

// KafkaEventPublisher emits phase-change events keyed by symbol so all
// events for one symbol land on the same partition in order.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaEventPublisher(producer *pkgkafka.Producer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

var _ domrepo.EventPublisher = (*KafkaEventPublisher)(nil)

func (p *KafkaEventPublisher) PublishPhaseChange(ctx context.Context, ev models.PhaseChangeEvent) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(ev.Symbol), ev); err != nil {
		return fmt.Errorf("publish phase change: %w", err)
	}
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}

// KafkaLogSink adapts the producer to the log collector's Publisher
// interface so aggregated error logs ship to their own topic.
type KafkaLogSink struct {
	producer *pkgkafka.Producer
}

func NewKafkaLogSink(producer *pkgkafka.Producer) *KafkaLogSink {
	return &KafkaLogSink{producer: producer}
}

func (s *KafkaLogSink) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return s.producer.Publish(ctx, topic, nil, payload)
}

// NoopEventPublisher is used when event publishing is disabled in config.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishPhaseChange(context.Context, models.PhaseChangeEvent) error {
	return nil
}

func (NoopEventPublisher) Close() error { return nil }
