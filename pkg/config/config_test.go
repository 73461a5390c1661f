package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "info", c.Logger.Level)
	assert.Equal(t, "https://api.kraken.com", c.Kraken.Host)
	assert.Equal(t, "/0/public/Ticker", c.Kraken.TickerPath)
	assert.Equal(t, []string{"BTC/USD", "BTC/CHF", "BTC/EUR"}, c.Kraken.Pairs)
	assert.Equal(t, 5*time.Second, c.Kraken.FetchTimeout)
	assert.False(t, c.Cache.Enabled)
	assert.Equal(t, "memory", c.Cache.Backend)
	assert.Equal(t, 2*time.Second, c.Cache.TTL)
	assert.NoError(t, c.Validate())
}

func TestDefaultDoesNotShareDefaultPairs(t *testing.T) {
	c := Default()
	c.Kraken.Pairs[0] = "ETH/USD"
	assert.Equal(t, "BTC/USD", DefaultPairs[0])
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
logger:
  level: debug
kraken:
  host: http://localhost:9999
  pairs: [ETH/USD, XRP/EUR]
  fetch_timeout: 750ms
cache:
  enabled: true
  backend: redis
  redis:
    addr: redis:6379
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "debug", c.Logger.Level)
	assert.Equal(t, "http://localhost:9999", c.Kraken.Host)
	assert.Equal(t, []string{"ETH/USD", "XRP/EUR"}, c.Kraken.Pairs)
	assert.Equal(t, 750*time.Millisecond, c.Kraken.FetchTimeout)
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, "redis", c.Cache.Backend)
	assert.Equal(t, "redis:6379", c.Cache.Redis.Addr)

	// untouched sections keep their defaults
	assert.Equal(t, "/0/public/Ticker", c.Kraken.TickerPath)
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout)
}

func TestLoadEmptyPairsFallBack(t *testing.T) {
	c, err := Load(writeConfig(t, "kraken:\n  pairs: []\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPairs, c.Kraken.Pairs)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "server: [",
		"bad level":      "logger:\n  level: loud\n",
		"bad port":       "server:\n  port: 70000\n",
		"bad pair":       "kraken:\n  pairs: [BTCUSD]\n",
		"nested pair":    "kraken:\n  pairs: [A/B/C]\n",
		"bad backend":    "cache:\n  backend: memcached\n",
		"zero timeout":   "kraken:\n  fetch_timeout: 0s\n",
		"relative path":  "kraken:\n  ticker_path: Ticker\n",
		"metrics path":   "metrics:\n  path: metrics\n",
		"missing scheme": "kraken:\n  host: api.kraken.com\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("KRAKEN_HOST", "http://127.0.0.1:8081")
	t.Setenv("KRAKEN_PAIRS", " BTC/USD , ETH/EUR ,,")
	t.Setenv("KRAKEN_FETCH_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("PORT", "3000")
	t.Setenv("CACHE_ENABLED", "yes")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("REDIS_ADDR", "cache:6380")

	c, err := LoadWithEnv("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8081", c.Kraken.Host)
	assert.Equal(t, []string{"BTC/USD", "ETH/EUR"}, c.Kraken.Pairs)
	assert.Equal(t, 2*time.Second, c.Kraken.FetchTimeout)
	assert.Equal(t, "debug", c.Logger.Level)
	assert.Equal(t, 3000, c.Server.Port)
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, "cache:6380", c.Cache.Redis.Addr)
}

func TestLoadWithEnvRejectsBadValues(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := LoadWithEnv("")
		assert.ErrorContains(t, err, "PORT")
	})
	t.Run("timeout", func(t *testing.T) {
		t.Setenv("KRAKEN_FETCH_TIMEOUT", "soon")
		_, err := LoadWithEnv("")
		assert.ErrorContains(t, err, "KRAKEN_FETCH_TIMEOUT")
	})
	t.Run("pairs", func(t *testing.T) {
		t.Setenv("KRAKEN_PAIRS", "BTCUSD")
		_, err := LoadWithEnv("")
		assert.Error(t, err)
	})
}
