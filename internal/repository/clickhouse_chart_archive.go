package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domrepo "github.com/csg8/suanmingapp/internal/domain/repository"
	applogger "github.com/csg8/suanmingapp/pkg/logger"
)

// chExecutor is the part of the ClickHouse client the archive uses.
type chExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Health(ctx context.Context) error
	Close() error
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// CHChartArchive implements ChartArchive backed by a ClickHouse MergeTree table.
type CHChartArchive struct {
	db    chExecutor
	table string
	l     *applogger.Logger
}

func NewCHChartArchive(db chExecutor, table string) (*CHChartArchive, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid clickhouse table name %q", table)
	}
	return &CHChartArchive{db: db, table: table, l: applogger.Nop()}, nil
}

// SetLogger injects a structured logger.
func (s *CHChartArchive) SetLogger(l *applogger.Logger) { s.l = l }

// EnsureSchema creates the archive table if it does not exist.
func (s *CHChartArchive) EnsureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            id           String,
            kind         LowCardinality(String),
            generated_at DateTime64(3, 'UTC'),
            year         Int32,
            month        UInt8,
            day          UInt8,
            hour         UInt8,
            gender       LowCardinality(String),
            summary      String,
            payload      String
        )
        ENGINE = MergeTree
        PARTITION BY toYYYYMM(generated_at)
        ORDER BY (kind, generated_at, id)
    `, s.table)
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure schema %s: %w", s.table, err)
	}
	return nil
}

func (s *CHChartArchive) Store(ctx context.Context, r *models.ChartRecord) error {
	q := fmt.Sprintf(`INSERT INTO %s (id, kind, generated_at, year, month, day, hour, gender, summary, payload) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, s.table)
	_, err := s.db.ExecContext(ctx, q,
		r.ID,
		r.Kind,
		r.GeneratedAt.UTC(),
		int32(r.Moment.Year),
		uint8(r.Moment.Month),
		uint8(r.Moment.Day),
		uint8(r.Moment.Hour),
		string(r.Gender),
		r.Summary,
		string(r.Payload),
	)
	if err != nil {
		s.l.Error("clickhouse store chart error",
			applogger.String("table", s.table),
			applogger.String("id", r.ID),
			applogger.String("kind", r.Kind),
			applogger.Error(err),
		)
		return fmt.Errorf("store chart %s: %w", r.ID, err)
	}
	return nil
}

func (s *CHChartArchive) Health(ctx context.Context) error { return s.db.Health(ctx) }

func (s *CHChartArchive) Close() error { return s.db.Close() }

// NoopArchive drops every record.
type NoopArchive struct{}

func (NoopArchive) Store(context.Context, *models.ChartRecord) error { return nil }
func (NoopArchive) Health(context.Context) error                     { return nil }
func (NoopArchive) Close() error                                     { return nil }

var (
	_ domrepo.ChartArchive = (*CHChartArchive)(nil)
	_ domrepo.ChartArchive = NoopArchive{}
)
