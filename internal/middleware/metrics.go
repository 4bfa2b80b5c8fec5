package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, endpoint, and status",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_milliseconds",
			Help:    "HTTP request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"method", "endpoint"},
	)
)

// HTTPMetrics records request counts and latency per route
func HTTPMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// c.Path() groups by route pattern rather than raw URL
			endpoint := c.Path()
			method := c.Request().Method
			status := c.Response().Status

			httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, endpoint).
				Observe(float64(time.Since(start).Milliseconds()))

			return err
		}
	}
}
