package kraken

import (
	"context"
	"fmt"
	"strings"

	"KrakenLTP/internal/domain/models"
	drepo "KrakenLTP/internal/domain/repository"
	xhttp "KrakenLTP/pkg/http"
	applogger "KrakenLTP/pkg/logger"
)

const (
	DefaultHost       = "https://api.kraken.com"
	DefaultTickerPath = "/0/public/Ticker"
)

// Client fetches public ticker data from the Kraken REST API.
type Client struct {
	http       *xhttp.Client
	host       string
	tickerPath string
	l          *applogger.Logger
}

// New creates a Kraken ticker client. An empty host or path falls back to the public API.
func New(httpClient *xhttp.Client, host, tickerPath string, l *applogger.Logger) drepo.TickerSource {
	if host == "" {
		host = DefaultHost
	}
	if tickerPath == "" {
		tickerPath = DefaultTickerPath
	}
	if l == nil {
		l = applogger.Nop()
	}
	return &Client{
		http:       httpClient,
		host:       strings.TrimRight(host, "/"),
		tickerPath: tickerPath,
		l:          l,
	}
}

// PairParam converts "BTC/USD" into the "BTCUSD" form Kraken expects.
func PairParam(pair string) string {
	return strings.ReplaceAll(pair, "/", "")
}

// Fetch performs one GET for pair. It never retries.
func (c *Client) Fetch(ctx context.Context, pair string) (*models.TickerEnvelope, error) {
	url := c.host + c.tickerPath
	c.l.Debug("kraken.fetch connecting", applogger.String("pair", pair), applogger.String("url", url))

	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         url,
		QueryParams: map[string][]string{"pair": {PairParam(pair)}},
	})
	if err != nil {
		return nil, connectError(err)
	}

	var env models.TickerEnvelope
	if err := xhttp.DecodeJSON(resp, &env); err != nil {
		return nil, fetchFailedError(err)
	}

	if len(env.Error) > 0 {
		return nil, incorrectResponseError(strings.Join(env.Error, "; "))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fetchFailedError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	c.l.Debug("kraken.fetch success", applogger.String("pair", pair))
	return &env, nil
}
