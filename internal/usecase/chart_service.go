package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domrepo "github.com/csg8/suanmingapp/internal/domain/repository"
	domsvc "github.com/csg8/suanmingapp/internal/domain/service"
	"github.com/csg8/suanmingapp/internal/services/bazi"
	"github.com/csg8/suanmingapp/internal/services/ziwei"
	"github.com/csg8/suanmingapp/pkg/cache"
	applogger "github.com/csg8/suanmingapp/pkg/logger"
)

// ChartService computes Four-Pillars readings and palace charts, caching,
// archiving and announcing each result.
type ChartService struct {
	lunar     domsvc.LunarConverter
	engine    *ziwei.Engine
	metrics   domrepo.Metrics
	cache     cache.Service
	cacheTTL  time.Duration
	archive   domrepo.ChartArchive
	publisher domrepo.EventPublisher
	l         *applogger.Logger
	now       func() time.Time
	newID     func() string
}

func NewChartService(lunar domsvc.LunarConverter, metrics domrepo.Metrics) *ChartService {
	return &ChartService{
		lunar:   lunar,
		engine:  ziwei.NewEngine(lunar),
		metrics: metrics,
		l:       applogger.Nop(),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// SetCache enables read-through caching of computed charts.
func (s *ChartService) SetCache(c cache.Service, ttl time.Duration) {
	s.cache = c
	s.cacheTTL = ttl
}

// SetArchive injects the chart archive.
func (s *ChartService) SetArchive(a domrepo.ChartArchive) { s.archive = a }

// SetPublisher injects the chart event publisher.
func (s *ChartService) SetPublisher(p domrepo.EventPublisher) { s.publisher = p }

// SetLogger injects a structured logger.
func (s *ChartService) SetLogger(l *applogger.Logger) { s.l = l }

// Provider names the lunar collaborator in use.
func (s *ChartService) Provider() string { return s.lunar.Name() }

// BaZi returns the Four-Pillars reading of m. The pillars come from the solar
// moment; the attached lunar date must still pass validation.
func (s *ChartService) BaZi(ctx context.Context, m models.CalendarMoment, g models.Gender) (models.BaZiReading, error) {
	if err := m.Validate(); err != nil {
		s.metrics.RecordError("invalid_input")
		return models.BaZiReading{}, err
	}

	start := time.Now()
	key := s.cacheKey(models.KindBaZi, m, g)
	var out models.BaZiReading
	if s.lookup(ctx, models.KindBaZi, key, &out) {
		return out, nil
	}

	l, err := s.lunar.ToLunar(ctx, m)
	if err != nil {
		s.metrics.RecordError("lunar")
		return models.BaZiReading{}, err
	}
	if err := l.Validate(); err != nil {
		s.metrics.RecordError("lunar")
		return models.BaZiReading{}, fmt.Errorf("%s: %w", s.lunar.Name(), err)
	}
	out = bazi.Read(m, g, l)
	s.metrics.RecordLatency(models.KindBaZi, time.Since(start).Seconds())

	p := out.Pillars.Strings()
	s.finish(ctx, models.KindBaZi, key, m, g, strings.Join(p[:], " "), out)
	return out, nil
}

// ZiWei returns the twelve-palace chart of m.
func (s *ChartService) ZiWei(ctx context.Context, m models.CalendarMoment, g models.Gender) (models.PalaceChart, error) {
	if err := m.Validate(); err != nil {
		s.metrics.RecordError("invalid_input")
		return models.PalaceChart{}, err
	}

	start := time.Now()
	key := s.cacheKey(models.KindZiWei, m, g)
	var out models.PalaceChart
	if s.lookup(ctx, models.KindZiWei, key, &out) {
		return out, nil
	}

	out, err := s.engine.Generate(ctx, m, g)
	if err != nil {
		s.metrics.RecordError("lunar")
		return models.PalaceChart{}, err
	}
	s.metrics.RecordLatency(models.KindZiWei, time.Since(start).Seconds())
	for _, p := range out.Predictions {
		s.metrics.RecordVerdict(p.Verdict.String())
	}

	s.finish(ctx, models.KindZiWei, key, m, g, out.MingGong.String(), out)
	return out, nil
}

func (s *ChartService) cacheKey(kind string, m models.CalendarMoment, g models.Gender) string {
	return cache.GenerateKeyWithParams("chart", kind, s.lunar.Name(), m.Year, m.Month, m.Day, m.Hour, string(g))
}

func (s *ChartService) lookup(ctx context.Context, kind, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		s.metrics.RecordCache(kind, true)
		return true
	}
	s.metrics.RecordCache(kind, false)
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.metrics.RecordError("cache")
		s.l.Warn("chart cache read failed", applogger.String("key", key), applogger.Error(err))
	}
	return false
}

// finish stores, archives and publishes a freshly computed chart. None of
// these steps can fail the request.
func (s *ChartService) finish(ctx context.Context, kind, key string, m models.CalendarMoment, g models.Gender, summary string, chart interface{}) {
	s.metrics.RecordChart(kind)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, chart, s.cacheTTL); err != nil {
			s.metrics.RecordError("cache")
			s.l.Warn("chart cache write failed", applogger.String("key", key), applogger.Error(err))
		}
	}
	if s.archive == nil && s.publisher == nil {
		return
	}

	id := s.newID()
	at := s.now().UTC()

	if s.archive != nil {
		payload, err := json.Marshal(chart)
		if err == nil {
			err = s.archive.Store(ctx, &models.ChartRecord{
				ID:          id,
				Kind:        kind,
				Moment:      m,
				Gender:      g,
				Summary:     summary,
				Payload:     payload,
				GeneratedAt: at,
			})
		}
		if err != nil {
			s.metrics.RecordError("archive")
			s.l.Error("chart archive failed", applogger.String("id", id), applogger.String("kind", kind), applogger.Error(err))
		}
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, &models.ChartEvent{
			ID:          id,
			Kind:        kind,
			Moment:      m,
			Gender:      g,
			Summary:     summary,
			GeneratedAt: at,
		})
		if err != nil {
			s.metrics.RecordError("publish")
			s.l.Error("chart event publish failed", applogger.String("id", id), applogger.String("kind", kind), applogger.Error(err))
		}
	}
}
