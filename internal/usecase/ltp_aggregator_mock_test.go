package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"KrakenLTP/internal/domain/models"
	domrepo "KrakenLTP/internal/domain/repository"
	"KrakenLTP/internal/domain/repository/mocks"
	"KrakenLTP/internal/usecase"
)

func TestCollectPricesFetchesEachPairOnce(t *testing.T) {
	t.Parallel()

	// Arrange: one priced pair and one upstream failure
	ctrl := gomock.NewController(t)
	src := mocks.NewMockTickerSource(ctrl)
	m := mocks.NewMockLtpMetrics(ctrl)

	env := &models.TickerEnvelope{Result: &models.PairResults{{
		Key:   "XXBTZUSD",
		Value: models.TickerResult{Record: &models.TickerRecord{LastTradeClose: []string{"64612.1", "0.1"}}},
	}}}
	src.EXPECT().Fetch(gomock.Any(), "BTC/USD").Return(env, nil).Times(1)
	src.EXPECT().Fetch(gomock.Any(), "BTC/EUR").Return(nil, context.DeadlineExceeded).Times(1)

	m.EXPECT().RecordFetch("BTC/USD", domrepo.OutcomeOK, gomock.Any()).Times(1)
	m.EXPECT().RecordFetch("BTC/EUR", domrepo.OutcomeConnect, gomock.Any()).Times(1)
	m.EXPECT().RecordLastPrice("BTC/USD", 64612.1).Times(1)
	m.EXPECT().RecordAggregate(1).Times(1)

	// Act
	res := usecase.NewLtpAggregator(src, nil, usecase.WithMetrics(m)).
		CollectPrices(t.Context(), []string{"BTC/USD", "BTC/EUR"})

	// Assert
	require.Equal(t, []models.PricedPair{{Pair: "BTC/USD", Amount: "64612.10"}}, res.Ltp)
}
