package di

import (
	"context"
	"fmt"
	"time"

	"github.com/csg8/suanmingapp/internal/domain/repository"
	domsvc "github.com/csg8/suanmingapp/internal/domain/service"
	"github.com/csg8/suanmingapp/internal/handler/api"
	internalrepo "github.com/csg8/suanmingapp/internal/repository"
	"github.com/csg8/suanmingapp/internal/service/ratelimit"
	"github.com/csg8/suanmingapp/internal/services/lunar"
	"github.com/csg8/suanmingapp/internal/usecase"
	"github.com/csg8/suanmingapp/pkg/cache"
	pkgch "github.com/csg8/suanmingapp/pkg/clickhouse"
	"github.com/csg8/suanmingapp/pkg/config"
	xhttp "github.com/csg8/suanmingapp/pkg/http"
	pkgkafka "github.com/csg8/suanmingapp/pkg/kafka"
	applogger "github.com/csg8/suanmingapp/pkg/logger"
	"github.com/csg8/suanmingapp/pkg/metrics"
	"github.com/csg8/suanmingapp/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	return metrics.New(nil)
}

// ProvideLunarConverter selects the lunar collaborator named by lunar.provider.
func ProvideLunarConverter(cfg *config.Config) (domsvc.LunarConverter, error) {
	switch cfg.Lunar.Provider {
	case lunar.ProviderCalendar, "":
		return lunar.NewCalendarConverter(), nil
	case lunar.ProviderIdentity:
		return lunar.NewIdentityConverter(), nil
	case lunar.ProviderHTTP:
		return lunar.NewHTTPConverter(cfg.Lunar.ServiceURL, cfg.Lunar.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown lunar provider %q", cfg.Lunar.Provider)
	}
}

// ProvideCache creates the chart cache: memory only, or memory in front of
// Redis. Returns nil when caching is disabled.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rc, err := cache.NewRedisCache(ctx,
		cache.WithRedisAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
		cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	l.Info("redis cache connected", applogger.String("host", cfg.Cache.Redis.Host), applogger.Int("port", cfg.Cache.Redis.Port))
	return cache.NewLayeredCache(rc, cfg.Cache.MemoryMaxSize, cfg.Cache.TTL), nil
}

// ProvideChartArchive connects to ClickHouse and ensures the chart table.
// Returns a no-op archive when ClickHouse is disabled.
func ProvideChartArchive(cfg *config.Config, l *applogger.Logger) (repository.ChartArchive, error) {
	if !cfg.ClickHouse.Enabled {
		return internalrepo.NoopArchive{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := pkgch.NewClient(ctx,
		pkgch.WithAddr(cfg.ClickHouse.Host, cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	archive, err := internalrepo.NewCHChartArchive(client, cfg.ClickHouse.Database+"."+cfg.ClickHouse.Table)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	archive.SetLogger(l)
	if err := archive.EnsureSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	l.Info("clickhouse archive ready", applogger.String("database", cfg.ClickHouse.Database), applogger.String("table", cfg.ClickHouse.Table))
	return archive, nil
}

// ProvideEventPublisher creates the Kafka chart event publisher, or a no-op
// publisher when Kafka is disabled.
func ProvideEventPublisher(cfg *config.Config) (repository.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopPublisher{}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithTopic(cfg.Kafka.Topic),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatching(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.BatchBytes, cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaEventPublisher(producer), nil
}

// ProvideChartService creates the chart use case with its optional collaborators.
func ProvideChartService(
	cfg *config.Config,
	l *applogger.Logger,
	converter domsvc.LunarConverter,
	m repository.Metrics,
	c cache.Service,
	archive repository.ChartArchive,
	publisher repository.EventPublisher,
) *usecase.ChartService {
	svc := usecase.NewChartService(converter, m)
	svc.SetLogger(l)
	if c != nil {
		svc.SetCache(c, cfg.Cache.TTL)
	}
	svc.SetArchive(archive)
	svc.SetPublisher(publisher)
	return svc
}

// ProvideChartsHandler creates the Echo chart handler.
func ProvideChartsHandler(l *applogger.Logger, svc *usecase.ChartService) xhttp.Handler {
	return api.NewChartsEchoHandler(l, svc)
}

// ProvideRateLimiter creates the per-client limiter, or nil when disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.Server.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.Server.RateLimit.Capacity, cfg.Server.RateLimit.RefillPerSec)
}

// ProvideApp creates the application server and registers resources to
// close on shutdown.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	h xhttp.Handler,
	limiter *ratelimit.Limiter,
	c cache.Service,
	archive repository.ChartArchive,
	publisher repository.EventPublisher,
) *server.App {
	app := server.New(cfg, l, h, limiter)
	app.OnShutdown("cache", c)
	app.OnShutdown("clickhouse", archive)
	app.OnShutdown("kafka", publisher)
	return app
}
