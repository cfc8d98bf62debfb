package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics samples every request except those whose route template is in skip.
// Samples carry the route template, not the concrete path, so short codes do
// not blow up cardinality.
func Metrics(recorder HTTPRecorder, skip ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := cmp.Or(c.Path(), "/")
			if slices.Contains(skip, route) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			m := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       route,
				StatusCode: c.Response().Status,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
			}
			if err != nil {
				m.Error = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					m.StatusCode = he.Code
				}
			}
			recorder.RecordHTTP(m)

			return err
		}
	}
}
