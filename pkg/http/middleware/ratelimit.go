package middleware

import (
	"net/http"

	applogger "KrakenLTP/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Allower decides whether a request keyed by client identity may proceed.
type Allower interface {
	Allow(key string) bool
}

// RateLimit rejects requests with 429 once the client's bucket is empty.
// Clients are keyed by echo's RealIP.
func RateLimit(a Allower, l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if a.Allow(ip) {
				return next(c)
			}
			l.Warn("rate limit exceeded",
				applogger.String("ip", ip),
				applogger.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
				"status":  http.StatusTooManyRequests,
				"message": http.StatusText(http.StatusTooManyRequests),
			})
		}
	}
}
