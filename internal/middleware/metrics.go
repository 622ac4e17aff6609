package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"

	"duvidas/internal/observability"
)

// InitMetrics creates the Prometheus request instrumentation for the service.
// The caller registers the /metrics endpoint during route setup.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler for the
// given Prometheus instance.
func MetricsMiddleware(prometheus *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prometheus.Middleware
}

// RedisErrors increments the Redis error counter for the given operation.
func RedisErrors(operation string) {
	observability.RedisErrorRate.WithLabelValues(operation).Inc()
}
