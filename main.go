package main

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/gpsr-commands/internal/api"
	"github.com/Conceptual-Machines/gpsr-commands/internal/config"
	"github.com/Conceptual-Machines/gpsr-commands/internal/database"
	"github.com/Conceptual-Machines/gpsr-commands/internal/export"
	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
	"github.com/Conceptual-Machines/gpsr-commands/internal/metrics"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout = 2 * time.Second
	storageMemory      = "memory"
	storagePostgres    = "postgres"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "gpsr-commands@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            !cfg.IsProduction(),
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	// Load lexicons and build the generator
	lex, err := lexicon.FromDir(cfg.LexiconDir)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to load lexicons:", err)
	}

	var opts []grammar.Option
	if cfg.Seed != 0 {
		opts = append(opts, grammar.WithSeed(cfg.Seed))
	}
	generator, err := grammar.NewGenerator(lex, opts...)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to build command generator:", err)
	}

	// Examples go to postgres when configured, memory otherwise
	var store export.ExampleStore = export.NewMemoryStore()
	storeName := storageMemory
	if cfg.HasDatabase() {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to connect to database:", err)
		}
		if err := database.Migrate(db); err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to run migrations:", err)
		}
		store = database.NewExampleRepository(db)
		storeName = storagePostgres
	}

	cloudwatch, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		log.Printf("CloudWatch metrics unavailable: %v", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(api.Services{
		Generator:  generator,
		Store:      store,
		StoreName:  storeName,
		CloudWatch: cloudwatch,
	}, cfg, GetVersion())

	log.Printf("🚀 Starting server on port %s (storage: %s)", cfg.Port, storeName)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
