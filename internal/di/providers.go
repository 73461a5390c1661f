package di

import (
	"context"
	"fmt"
	"time"

	"KrakenLTP/internal/domain/repository"
	"KrakenLTP/internal/handler/api"
	icache "KrakenLTP/internal/service/cache"
	"KrakenLTP/internal/service/kraken"
	"KrakenLTP/internal/service/ratelimit"
	"KrakenLTP/internal/usecase"
	"KrakenLTP/pkg/config"
	xhttp "KrakenLTP/pkg/http"
	applogger "KrakenLTP/pkg/logger"
	"KrakenLTP/pkg/metrics"
	"KrakenLTP/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.LtpMetrics {
	return metrics.New(nil)
}

// ProvideHTTPClient creates the outbound HTTP client used for Kraken.
// The client timeout is a backstop; each fetch is bounded by its own context.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(2*cfg.Kraken.FetchTimeout),
		xhttp.WithUserAgent(cfg.Kraken.UserAgent),
	)
}

// ProvideTickerSource creates the Kraken ticker client.
func ProvideTickerSource(client *xhttp.Client, cfg *config.Config, l *applogger.Logger) repository.TickerSource {
	return kraken.New(client, cfg.Kraken.Host, cfg.Kraken.TickerPath, l)
}

// ProvideLtpAggregator creates the fan-out aggregator.
func ProvideLtpAggregator(src repository.TickerSource, m repository.LtpMetrics, l *applogger.Logger, cfg *config.Config) *usecase.LtpAggregator {
	return usecase.NewLtpAggregator(src, l,
		usecase.WithFetchTimeout(cfg.Kraken.FetchTimeout),
		usecase.WithMetrics(m),
	)
}

// ProvideResponseCache creates the optional response cache. It returns a nil cache when
// caching is disabled.
func ProvideResponseCache(cfg *config.Config, l *applogger.Logger) (icache.BytesCache, func(), error) {
	noop := func() {}
	if !cfg.Cache.Enabled {
		return nil, noop, nil
	}
	switch cfg.Cache.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := icache.NewRedisCache(ctx, icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("redis cache: %w", err)
		}
		l.Info("response cache: redis", applogger.String("addr", cfg.Cache.Redis.Addr))
		return rc, func() {
			if err := rc.Close(); err != nil {
				l.Warn("redis close error", applogger.Error(err))
			}
		}, nil
	default:
		l.Info("response cache: memory")
		return icache.NewTTLCache(), noop, nil
	}
}

// ProvideRateLimiter creates the per-client limiter for the public API, or nil when
// rate limiting is disabled. Idle buckets are pruned every minute until cleanup.
func ProvideRateLimiter(cfg *config.Config, l *applogger.Logger) (*ratelimit.Limiter, func()) {
	rl := cfg.Server.RateLimit
	if !rl.Enabled {
		return nil, func() {}
	}
	lim := ratelimit.New(rl.Burst, rl.PerSecond)
	stop := make(chan struct{})
	go func() {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if n := lim.Prune(5 * time.Minute); n > 0 {
					l.Debug("rate limiter pruned", applogger.Int("buckets", n))
				}
			case <-stop:
				return
			}
		}
	}()
	l.Info("rate limit enabled",
		applogger.Any("burst", rl.Burst),
		applogger.Any("per_second", rl.PerSecond),
	)
	return lim, func() { close(stop) }
}

// ProvideLtpHandler creates the HTTP handler for the LTP endpoint.
func ProvideLtpHandler(l *applogger.Logger, agg *usecase.LtpAggregator, c icache.BytesCache, lim *ratelimit.Limiter, cfg *config.Config) xhttp.Handler {
	h := api.NewLtpHandler(l, agg, cfg.Kraken.Pairs)
	if c != nil {
		h.SetCache(c, cfg.Cache.TTL)
	}
	if lim != nil {
		h.SetRateLimit(lim)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}
