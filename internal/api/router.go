package api

import (
	"github.com/Conceptual-Machines/gpsr-commands/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/gpsr-commands/internal/api/middleware"
	"github.com/Conceptual-Machines/gpsr-commands/internal/config"
	"github.com/Conceptual-Machines/gpsr-commands/internal/export"
	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Services are the long-lived dependencies shared by the handlers
type Services struct {
	Generator  *grammar.Generator
	Store      export.ExampleStore
	StoreName  string          // "memory" or "postgres"
	CloudWatch *metrics.Client // nil disables CloudWatch
}

func SetupRouter(svc Services, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(svc.CloudWatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(svc.Generator, svc.StoreName)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, svc.Store)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		commandHandler := handlers.NewCommandHandler(svc.Generator, svc.Store, cfg.MaxCommands, svc.CloudWatch)
		v1.POST("/commands", commandHandler.Generate)

		exportHandler := handlers.NewExportHandler(svc.Store, cfg.ExamplesPerIntent)
		v1.GET("/examples/export", exportHandler.Export)

		v1.POST("/qr", handlers.QRCode)

		grammarHandler := handlers.NewGrammarHandler(svc.Generator)
		v1.GET("/grammar", grammarHandler.Describe)
	}

	return router
}
