package models

import (
	"sort"
	"time"

	"KrakenLTP/pkg/util"
)

// PricedPair is one entry of the LTP response.
type PricedPair struct {
	Pair   string `json:"pair"`
	Amount string `json:"amount"`
}

// LtpListResponse is the aggregate returned by GET /api/v1/ltp.
// Entries are in completion order; DateTime is captured once per aggregation.
type LtpListResponse struct {
	Ltp      []PricedPair `json:"ltp"`
	DateTime string       `json:"date_time"`
}

// NewLtpListResponse creates an empty response sized for capacity pairs, stamped with now.
func NewLtpListResponse(capacity int, now time.Time) *LtpListResponse {
	return &LtpListResponse{
		Ltp:      make([]PricedPair, 0, capacity),
		DateTime: FormatDateTime(now),
	}
}

// AddItem appends one priced pair.
func (r *LtpListResponse) AddItem(p PricedPair) {
	r.Ltp = append(r.Ltp, p)
}

// SortByPair orders entries by pair name.
func (r *LtpListResponse) SortByPair() {
	sort.SliceStable(r.Ltp, func(i, j int) bool { return r.Ltp[i].Pair < r.Ltp[j].Pair })
}

// FormatDateTime renders t as RFC3339 with second precision and the zone offset.
func FormatDateTime(t time.Time) string {
	return util.FormatRFC3339Seconds(t)
}
