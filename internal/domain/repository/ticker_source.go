package repository

//go:generate mockgen -source=ticker_source.go -destination=mocks/mock_ticker_source.go -package=mocks

import (
	"context"

	"KrakenLTP/internal/domain/models"
)

// TickerSource fetches the ticker envelope for a single pair.
type TickerSource interface {
	Fetch(ctx context.Context, pair string) (*models.TickerEnvelope, error)
}

// LtpMetrics records per-pair fetch outcomes.
type LtpMetrics interface {
	RecordFetch(pair, outcome string, seconds float64)
	RecordLastPrice(pair string, price float64)
	RecordAggregate(priced int)
}

// Fetch outcomes used as metric labels.
const (
	OutcomeOK                = "ok"
	OutcomeConnect           = "connect"
	OutcomeFetchFailed       = "fetch_failed"
	OutcomeIncorrectResponse = "incorrect_response"
	OutcomeNoPrice           = "no_price"
)
