package handler

import (
	"github.com/gofiber/fiber/v2"

	"docstyle/internal/service"
)

// RegisterRoutes attaches the pipeline and health routes to app.
// checks are pinged by /health; an empty list reports healthy.
func RegisterRoutes(app *fiber.App, svc service.PipelineService, checks ...Pinger) {
	app.Get("/health", HealthCheck(checks...))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload", Upload(svc))
	app.Post("/analyze", Analyze(svc))
	app.Post("/visual-specs", VisualSpecs(svc))
	app.Get("/documents/:id/status", DocumentStatus(svc))
}
