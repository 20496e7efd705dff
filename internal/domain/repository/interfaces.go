package repository

import (
	"context"

	"github.com/csg8/suanmingapp/internal/domain/models"
)

// ChartArchive persists computed charts for later analysis.
type ChartArchive interface {
	Store(ctx context.Context, r *models.ChartRecord) error
	Health(ctx context.Context) error
	Close() error
}

// EventPublisher announces computed charts to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, e *models.ChartEvent) error
	Close() error
}

type Metrics interface {
	RecordChart(kind string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordCache(kind string, hit bool)
	RecordVerdict(verdict string)
}
