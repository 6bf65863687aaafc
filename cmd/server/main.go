package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/pkg/config"
	"life-sim-game/backend/pkg/di"
	"life-sim-game/backend/pkg/logger"
	"life-sim-game/backend/pkg/router"
	"life-sim-game/backend/pkg/secrets"
	"life-sim-game/backend/shared/observability"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize structured logger
	logConfig := logger.DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logConfig.Level = level
	}
	logConfig.JSON = os.Getenv("LOG_FORMAT") != "text"

	appLog := logger.New(logConfig)
	logger.SetGlobal(appLog)

	appLog.Info("Starting life simulation backend", "version", os.Getenv("APP_VERSION"))

	// Secrets come from Vault when enabled, env vars otherwise
	if err := secrets.Init(appLog); err != nil {
		appLog.LogError(err, "Failed to initialize secrets manager")
		os.Exit(1)
	}

	cfg := config.Get()
	secretsCtx, cancelSecrets := context.WithTimeout(context.Background(), 5*time.Second)
	cfg.JWT.Secret = secrets.GetSecretWithDefault(secretsCtx, "jwt_secret", cfg.JWT.Secret)
	cfg.Database.Password = secrets.GetSecretWithDefault(secretsCtx, "db_password", cfg.Database.Password)
	cancelSecrets()

	// Tracing and the Prometheus bridge
	shutdownTracing := observability.SetupTracing("life-sim-backend")
	defer shutdownTracing()
	observability.SetupPrometheusMetrics()

	// Initialize database
	db, err := config.NewDB()
	if err != nil {
		appLog.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(
		&models.SaveCode{},
		&models.Character{},
		&models.Relationship{},
		&models.LifeEvent{},
		&models.Career{},
	); err != nil {
		appLog.LogError(err, "Failed to migrate database")
		os.Exit(1)
	}

	// Indexes for the hot lookup paths
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_characters_save_code ON characters(save_code_id)").Error; err != nil {
		appLog.LogError(err, "Failed to create character index", "index", "idx_characters_save_code")
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_relationships_character ON relationships(character_id)").Error; err != nil {
		appLog.LogError(err, "Failed to create relationship index", "index", "idx_relationships_character")
	}

	// Wire the dependency container
	container := di.New(db, appLog)
	defer container.Close()

	// Seed the life event and career catalogs on first boot
	if err := container.CatalogService.Seed(); err != nil {
		appLog.LogError(err, "Failed to seed catalogs")
		os.Exit(1)
	}

	// Initialize and setup router
	r := router.New(container)
	r.SetupRoutes()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r.Engine,
	}

	// Start the server in a goroutine
	go func() {
		appLog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.LogError(err, "Server failed to start")
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.LogError(err, "Server forced to shutdown")
	}

	appLog.Info("Server exited gracefully")
}
