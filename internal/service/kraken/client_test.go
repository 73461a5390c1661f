package kraken

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drepo "KrakenLTP/internal/domain/repository"
	xhttp "KrakenLTP/pkg/http"
)

const chfPayload = `{"error":[],"result":{"XBTCHF":{"a":["59038.50000","1","1.000"],"b":["59005.80000","1","1.000"],"c":["59042.10000","0.00010000"],"v":["18.59019190","22.18713969"],"p":["58359.33086","58399.49802"],"t":[1420,1641],"l":["57500.00000","57500.00000"],"h":["59184.80000","59184.80000"],"o":"58778.00000"}}}`

func setupTest(t *testing.T, status int, body string) (*httptest.Server, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newTestClient(host string) drepo.TickerSource {
	return New(xhttp.NewClient(xhttp.WithTimeout(2*time.Second), xhttp.WithUserAgent("ltp-test")), host, DefaultTickerPath, nil)
}

func TestPairParam(t *testing.T) {
	assert.Equal(t, "BTCUSD", PairParam("BTC/USD"))
	assert.Equal(t, "XBTCHF", PairParam("XBTCHF"))
}

func TestFetchSuccess(t *testing.T) {
	srv, seen := setupTest(t, http.StatusOK, chfPayload)

	env, err := newTestClient(srv.URL).Fetch(context.Background(), "BTC/CHF")
	require.NoError(t, err)
	require.True(t, env.HasResult())

	first, ok := env.First()
	require.True(t, ok)
	assert.Equal(t, []string{"59042.10000", "0.00010000"}, first.Record.LastTradeClose)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, DefaultTickerPath, req.URL.Path)
	assert.Equal(t, "BTCCHF", req.URL.Query().Get("pair"))
	assert.Equal(t, "ltp-test", req.Header.Get("User-Agent"))
}

func TestFetchUpstreamErrorList(t *testing.T) {
	srv, _ := setupTest(t, http.StatusOK, `{"error":["EQuery:Unknown asset pair","EGeneral:Invalid arguments"]}`)

	env, err := newTestClient(srv.URL).Fetch(context.Background(), "QQ/USD")
	require.Error(t, err)
	assert.Nil(t, env)
	assert.True(t, errors.Is(err, ErrIncorrectResponse))

	var kerr *Error
	require.True(t, errors.As(err, &kerr))
	assert.Equal(t, KindIncorrectResponse, kerr.Kind)
	assert.Equal(t, drepo.OutcomeIncorrectResponse, kerr.Outcome())
	assert.Contains(t, err.Error(), "EQuery:Unknown asset pair")
	assert.Contains(t, err.Error(), "EGeneral:Invalid arguments")
}

func TestFetchErrorListWinsOverResult(t *testing.T) {
	srv, _ := setupTest(t, http.StatusOK, `{"error":["EService:Busy"],"result":{"XBTCHF":{"c":["1","2"]}}}`)

	_, err := newTestClient(srv.URL).Fetch(context.Background(), "BTC/CHF")
	assert.True(t, errors.Is(err, ErrIncorrectResponse))
}

func TestFetchMalformedBody(t *testing.T) {
	for _, body := range []string{`<html>oops</html>`, `{"error":"nope"}`, ``, `{"error":[],"result":{"XXBTZUSD":null}}`} {
		srv, _ := setupTest(t, http.StatusOK, body)

		_, err := newTestClient(srv.URL).Fetch(context.Background(), "BTC/USD")
		require.Error(t, err, body)
		assert.True(t, errors.Is(err, ErrFetchFailed), body)
		assert.False(t, errors.Is(err, ErrConnect), body)
	}
}

func TestFetchNon2xxWithoutErrorList(t *testing.T) {
	srv, _ := setupTest(t, http.StatusBadGateway, `{"error":[]}`)

	_, err := newTestClient(srv.URL).Fetch(context.Background(), "BTC/USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.Contains(t, err.Error(), "502")
}

func TestFetchConnectError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := srv.URL
	srv.Close()

	_, err := newTestClient(host).Fetch(context.Background(), "BTC/USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnect))
	assert.True(t, strings.HasPrefix(err.Error(), "connect is failed: "))
}

func TestFetchInvalidHost(t *testing.T) {
	_, err := newTestClient("KRAKEN_REST_API_HOST").Fetch(context.Background(), "BTC/USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnect))
}

func TestFetchTimeoutIsConnectError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).Fetch(ctx, "BTC/USD")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnect))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewDefaults(t *testing.T) {
	c := New(xhttp.NewClient(), "", "", nil).(*Client)
	assert.Equal(t, DefaultHost, c.host)
	assert.Equal(t, DefaultTickerPath, c.tickerPath)

	c = New(xhttp.NewClient(), "http://example.test/", "/x", nil).(*Client)
	assert.Equal(t, "http://example.test", c.host)
}
