package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRFC3339SecondsUTC(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 987654321, time.UTC)
	require.Equal(t, "2024-10-10T10:10:10Z", FormatRFC3339Seconds(ts))
}

func TestFormatRFC3339SecondsKeepsOffset(t *testing.T) {
	zurich := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2024, 10, 10, 12, 10, 10, 500, zurich)
	require.Equal(t, "2024-10-10T12:10:10+02:00", FormatRFC3339Seconds(ts))
}

func TestFormatRoundTrip(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got, err := time.Parse(time.RFC3339, FormatRFC3339Seconds(ts))
	require.NoError(t, err)
	require.True(t, got.Equal(ts))
}
