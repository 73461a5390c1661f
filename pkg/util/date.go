package util

import "time"

// FormatRFC3339Seconds renders t as RFC3339 with second precision, keeping t's zone
// offset ("Z" for UTC).
func FormatRFC3339Seconds(t time.Time) string {
	return t.Truncate(time.Second).Format(time.RFC3339)
}
