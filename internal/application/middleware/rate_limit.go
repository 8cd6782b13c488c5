package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/infra/metrics"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

const rateLimitTimeout = 500 * time.Millisecond

// Limiter counts one request for key. *redis.RateLimiter implements it.
type Limiter interface {
	Allow(ctx context.Context, key string) (redis.RateLimitResult, error)
}

// RateLimit rejects clients that exceed their window with 429. Limiter errors let the
// request through so the API stays available without Redis.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			endpoint := c.Path()

			ctx, cancel := context.WithTimeout(c.Request().Context(), rateLimitTimeout)
			result, err := limiter.Allow(ctx, c.RealIP())
			cancel()

			if err != nil {
				log.Warn("rate limiter unavailable, request allowed", zap.String("endpoint", endpoint), zap.Error(err))
				c.Response().Header().Set("X-RateLimit-Error", "redis-error")
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				metrics.RLBlocked.WithLabelValues(endpoint).Inc()
				header.Set(echo.HeaderRetryAfter, strconv.Itoa(int(result.ResetIn.Round(time.Second)/time.Second)))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": msg.GetMessage("app.error.rate-limited")})
			}

			metrics.RLRequests.WithLabelValues(endpoint).Inc()
			return next(c)
		}
	}
}
