package usecase

import (
	"github.com/shopspring/decimal"

	"KrakenLTP/internal/domain/models"
)

// PricePlaces is the number of fractional digits in every reported amount.
const PricePlaces = 2

// maxPriceDigits bounds the integer digits of an accepted price (a 96-bit fixed-point range).
const maxPriceDigits = 29

// ExtractLastPrice returns the last trade price of the first pair in env, rounded to
// PricePlaces. ok is false when the envelope holds no usable price.
//
// Kraken pads the "c" field with the lot volume, so a single-element sequence is
// treated as incomplete. Unparseable price text is reported as zero.
func ExtractLastPrice(env *models.TickerEnvelope) (price string, ok bool) {
	first, ok := env.First()
	if !ok || !first.IsRecord() {
		return "", false
	}

	closes := first.Record.LastTradeClose
	if len(closes) < 2 {
		return "", false
	}
	if closes[0] == "" {
		return "", false
	}

	return NormalizePrice(closes[0]), true
}

// NormalizePrice rounds s half away from zero and renders it with exactly PricePlaces
// fractional digits. Text that does not parse, or whose magnitude has more than
// maxPriceDigits integer digits, is reported as zero.
func NormalizePrice(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero.StringFixed(PricePlaces)
	}

	// integer digits of |d|; values below 10^-3 always round to zero
	mag := d.NumDigits() + int(d.Exponent())
	if mag > maxPriceDigits || mag < -PricePlaces {
		return decimal.Zero.StringFixed(PricePlaces)
	}
	return d.Round(PricePlaces).StringFixed(PricePlaces)
}
