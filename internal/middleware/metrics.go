package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

// InitMetrics creates the Prometheus HTTP middleware and registers the
// /metrics endpoint on the given app.
func InitMetrics(app *fiber.App, serviceName string) *fiberprometheus.FiberPrometheus {
	prom := fiberprometheus.New(serviceName)
	prom.RegisterAt(app, "/metrics")
	return prom
}
