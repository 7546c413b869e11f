package middleware

import (
	"strconv"
	"time"

	"rating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route
type MetricsMiddleware struct {
	collector *metrics.Collector
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(collector *metrics.Collector) *MetricsMiddleware {
	return &MetricsMiddleware{collector: collector}
}

// Handle wraps next and observes the outcome. It must run inside the error
// handler so the final status is known.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.collector.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		m.collector.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}
