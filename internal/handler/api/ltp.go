package api

import (
	"context"
	"encoding/json"
	"time"

	"KrakenLTP/internal/domain/models"
	icache "KrakenLTP/internal/service/cache"
	xhttp "KrakenLTP/pkg/http"
	"KrakenLTP/pkg/http/middleware"
	xlogger "KrakenLTP/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PriceCollector is satisfied by usecase.LtpAggregator.
type PriceCollector interface {
	CollectPrices(ctx context.Context, pairs []string) *models.LtpListResponse
}

// LtpHandler serves the last trade price aggregate.
type LtpHandler struct {
	logger *xlogger.Logger
	agg    PriceCollector
	pairs  []string

	cache    icache.BytesCache
	cacheTTL time.Duration
	limiter  middleware.Allower
}

func NewLtpHandler(logger *xlogger.Logger, agg PriceCollector, pairs []string) *LtpHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &LtpHandler{logger: logger, agg: agg, pairs: pairs}
}

// SetCache enables response caching for ttl.
func (h *LtpHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	h.cacheTTL = ttl
}

// SetRateLimit throttles the endpoint per client IP.
func (h *LtpHandler) SetRateLimit(a middleware.Allower) {
	h.limiter = a
}

func (h *LtpHandler) RegisterRoutes(e *echo.Echo) {
	var mws []echo.MiddlewareFunc
	if h.limiter != nil {
		mws = append(mws, middleware.RateLimit(h.limiter, h.logger))
	}
	g := e.Group("/api/v1", mws...)
	g.GET("/ltp", h.Ltp)
}

// Ltp handles GET /api/v1/ltp. The aggregate itself never fails: pairs that could not
// be priced are simply missing from the list.
func (h *LtpHandler) Ltp(c echo.Context) error {
	req := &models.LtpRequest{}
	if verr := xhttp.ReadAndValidateQuery(c, req); verr != nil {
		h.logger.Warn("ltp invalid query", xlogger.String("query", c.QueryString()))
		return xhttp.BadRequestResponse(c, verr)
	}
	ctx := c.Request().Context()

	cacheKey := "ltp:" + req.Order
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(ctx, cacheKey); err != nil {
			h.logger.Warn("ltp cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("ltp cache_hit", xlogger.String("key", cacheKey))
			return xhttp.JSONBlobResponse(c, b)
		}
	}

	res := h.agg.CollectPrices(ctx, h.pairs)
	if req.Order == models.OrderPair {
		res.SortByPair()
	}

	b, err := json.Marshal(res)
	if err != nil {
		h.logger.Error("ltp marshal_error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("encode error").WithError(err))
	}

	if h.cache != nil {
		if err := h.cache.SetBytes(ctx, cacheKey, b, h.cacheTTL); err != nil {
			h.logger.Warn("ltp cache_set_error", xlogger.Error(err))
		}
	}
	return xhttp.JSONBlobResponse(c, b)
}
