package server

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/csg8/suanmingapp/internal/service/ratelimit"
	"github.com/csg8/suanmingapp/pkg/config"
	xhttp "github.com/csg8/suanmingapp/pkg/http"
	applogger "github.com/csg8/suanmingapp/pkg/logger"
)

type namedCloser struct {
	name string
	c    io.Closer
}

// App encapsulates the entire application lifecycle.
type App struct {
	cfg         *config.Config
	l           *applogger.Logger
	httpHandler xhttp.Handler
	limiter     *ratelimit.Limiter
	httpServer  *xhttp.Server
	closers     []namedCloser
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, limiter *ratelimit.Limiter) *App {
	return &App{cfg: cfg, l: l, httpHandler: h, limiter: limiter}
}

// OnShutdown registers a resource closed after the HTTP server stops, in
// reverse registration order. Nil closers are ignored.
func (a *App) OnShutdown(name string, c io.Closer) {
	if c == nil {
		return
	}
	a.closers = append(a.closers, namedCloser{name: name, c: c})
}

// Handler exposes the HTTP handler the app serves.
func (a *App) Handler() xhttp.Handler { return a.httpHandler }

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(a.cfg.Server.SlowThreshold),
		xhttp.WithLogger(a.l),
	}
	if a.cfg.Server.CORS.Enabled {
		opts = append(opts, xhttp.WithCORS(a.cfg.Server.CORS.AllowOrigins, a.cfg.Server.CORS.MaxAge))
	} else {
		opts = append(opts, xhttp.WithCORS(nil, 0))
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	} else {
		opts = append(opts, xhttp.WithMetricsPath(""))
	}
	if a.limiter != nil {
		opts = append(opts, xhttp.WithRateLimit(a.limiter))
		go a.pruneLimiter(ctx)
	}

	a.httpServer = xhttp.NewServer(a.httpHandler, opts...)
	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("suanming service started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("lunar_provider", a.cfg.Lunar.Provider),
		applogger.Bool("cache", a.cfg.Cache.Enabled),
		applogger.Bool("kafka", a.cfg.Kafka.Enabled),
		applogger.Bool("clickhouse", a.cfg.ClickHouse.Enabled),
	)

	<-ctx.Done()
	a.l.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) pruneLimiter(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := a.limiter.Prune(); n > 0 {
				a.l.Debug("rate limiter pruned", applogger.Int("buckets", n))
			}
		}
	}
}

// shutdown gracefully stops the server and closes infrastructure clients.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Stop(ctx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		nc := a.closers[i]
		if err := nc.c.Close(); err != nil {
			a.l.Warn(nc.name+" close error", applogger.Error(err))
			errs = append(errs, err)
		}
	}

	a.l.Info("shutdown complete")
	return errors.Join(errs...)
}
