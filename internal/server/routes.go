package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uniassist/internal/db"
	"uniassist/internal/handlers/api"
	"uniassist/internal/pipeline"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, pipe *pipeline.Pipeline) {
	processHandler := api.NewProcessHandler(database, pipe, s.Cfg)
	healthHandler := api.NewHealthHandler(database)

	s.App.Post("/api/process", processHandler.Process)
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
