package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"KrakenLTP/internal/domain/models"
	domrepo "KrakenLTP/internal/domain/repository"
	applogger "KrakenLTP/pkg/logger"
)

const defaultFetchTimeout = 5 * time.Second

// LtpAggregator collects last trade prices for a fixed pair list.
type LtpAggregator struct {
	source       domrepo.TickerSource
	metrics      domrepo.LtpMetrics
	l            *applogger.Logger
	fetchTimeout time.Duration

	timeNow func() time.Time
}

// AggregatorOption configures LtpAggregator.
type AggregatorOption func(*LtpAggregator)

// WithFetchTimeout bounds each per-pair fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) AggregatorOption {
	return func(a *LtpAggregator) { a.fetchTimeout = d }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m domrepo.LtpMetrics) AggregatorOption {
	return func(a *LtpAggregator) { a.metrics = m }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *LtpAggregator) { a.timeNow = now }
}

func NewLtpAggregator(source domrepo.TickerSource, l *applogger.Logger, opts ...AggregatorOption) *LtpAggregator {
	if l == nil {
		l = applogger.Nop()
	}
	a := &LtpAggregator{
		source:       source,
		l:            l,
		fetchTimeout: defaultFetchTimeout,
		timeNow:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CollectPrices fetches every pair concurrently and returns those that produced a price.
// A failing pair is logged and dropped; it never cancels the others. The call returns
// only after every fetch has finished. Entry order follows completion order.
func (a *LtpAggregator) CollectPrices(ctx context.Context, pairs []string) *models.LtpListResponse {
	res := models.NewLtpListResponse(len(pairs), a.timeNow())

	ch := make(chan models.PricedPair, len(pairs))
	var wg sync.WaitGroup

	for _, pair := range pairs {
		wg.Add(1)
		go func(pair string) {
			defer wg.Done()
			if p, ok := a.priceOf(ctx, pair); ok {
				ch <- p
			}
		}(pair)
	}

	go func() { wg.Wait(); close(ch) }()

	for p := range ch {
		res.AddItem(p)
	}

	if a.metrics != nil {
		a.metrics.RecordAggregate(len(res.Ltp))
	}
	return res
}

func (a *LtpAggregator) priceOf(ctx context.Context, pair string) (models.PricedPair, bool) {
	fctx := ctx
	if a.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, a.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	env, err := a.source.Fetch(fctx, pair)
	elapsed := time.Since(start)

	if err != nil {
		a.l.Error("ltp pair not fetched",
			applogger.String("pair", pair),
			applogger.Error(err),
			applogger.Duration("duration_ms", elapsed),
		)
		a.record(pair, outcomeOf(err), elapsed)
		return models.PricedPair{}, false
	}

	if !env.HasResult() {
		a.l.Debug("ltp pair has no result", applogger.String("pair", pair))
		a.record(pair, domrepo.OutcomeNoPrice, elapsed)
		return models.PricedPair{}, false
	}

	price, ok := ExtractLastPrice(env)
	if !ok {
		a.l.Debug("ltp pair has no last price", applogger.String("pair", pair))
		a.record(pair, domrepo.OutcomeNoPrice, elapsed)
		return models.PricedPair{}, false
	}

	a.record(pair, domrepo.OutcomeOK, elapsed)
	if a.metrics != nil {
		if d, err := decimal.NewFromString(price); err == nil {
			a.metrics.RecordLastPrice(pair, d.InexactFloat64())
		}
	}
	return models.PricedPair{Pair: pair, Amount: price}, true
}

func (a *LtpAggregator) record(pair, outcome string, elapsed time.Duration) {
	if a.metrics != nil {
		a.metrics.RecordFetch(pair, outcome, elapsed.Seconds())
	}
}

// outcomeOf maps a fetch error to a metrics label. Sources expose their
// classification through an Outcome method.
func outcomeOf(err error) string {
	var oc interface{ Outcome() string }
	if errors.As(err, &oc) {
		return oc.Outcome()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domrepo.OutcomeConnect
	}
	return domrepo.OutcomeFetchFailed
}
