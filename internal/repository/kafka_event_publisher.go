package repository

import (
	"context"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domrepo "github.com/csg8/suanmingapp/internal/domain/repository"
)

// messagePublisher is satisfied by *kafka.Producer.
type messagePublisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// KafkaEventPublisher emits chart events keyed by chart kind.
type KafkaEventPublisher struct {
	producer messagePublisher
}

func NewKafkaEventPublisher(p messagePublisher) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: p}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, e *models.ChartEvent) error {
	return p.producer.Publish(ctx, e.Kind, e)
}

func (p *KafkaEventPublisher) Close() error { return p.producer.Close() }

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *models.ChartEvent) error { return nil }
func (NoopPublisher) Close() error                                      { return nil }

var (
	_ domrepo.EventPublisher = (*KafkaEventPublisher)(nil)
	_ domrepo.EventPublisher = NoopPublisher{}
)
