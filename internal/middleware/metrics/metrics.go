package metricsmw

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/urban-monkey/storefront/internal/telemetry"
)

// Record counts each request and records its duration, labelled by method,
// route, and status. A nil Metrics disables the middleware.
func Record(m *telemetry.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m == nil {
			return next
		}
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			ctx := c.Request().Context()
			attrs := metric.WithAttributes(
				attribute.String("http.method", c.Request().Method),
				attribute.String("http.route", c.Path()),
				attribute.Int("http.status_code", c.Response().Status),
			)
			m.HTTPRequests.Add(ctx, 1, attrs)
			m.RequestDuration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
			return err
		}
	}
}
