package router

import (
	"time"

	"life-sim-game/backend/internal/api"
	"life-sim-game/backend/pkg/config"
	"life-sim-game/backend/pkg/di"
	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/health"
	"life-sim-game/backend/pkg/logger"
	"life-sim-game/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
	Checker   *health.Checker
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	logger.SetGlobal(container.Logger)

	cfg := config.Get()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Logger middleware first so every request is captured
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(logger.Middleware(container.Logger))
	engine.Use(errors.ErrorHandler())
	engine.Use(errors.RecoveryWithLogger())

	// Session claims must be resolved before the rate limiter so each save
	// slot gets its own budget instead of sharing the client IP bucket.
	engine.Use(middleware.OptionalSessionAuth(container.JWTService))

	rateLimiter := middleware.NewRateLimiter(container.Logger)
	engine.Use(rateLimiter.Middleware())

	checker := health.NewChecker(container.Logger, 30*time.Second)
	checker.RegisterDatabaseCheck(func() error {
		return config.TestConnection(container.DB)
	})
	if container.SnapshotCache != nil {
		checker.RegisterRedisCheck(container.SnapshotCache.Ping)
	}
	checker.Start()

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
		Checker:   checker,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.Engine.Use(corsMiddleware())

	sessionAuth := middleware.SessionAuth(r.Container.JWTService)

	characterHandler := api.NewCharacterHandler(r.Container.CharacterService, r.Container.RelationshipService, r.Container.Hub)
	saveCodeHandler := api.NewSaveCodeHandler(r.Container.SaveCodeService)
	catalogHandler := api.NewCatalogHandler(r.Container.CatalogService)
	healthHandler := &api.HealthHandler{}

	// Operational endpoints outside the versioned API
	r.Engine.GET("/health", healthHandler.Liveness)
	r.Engine.GET("/health/components", gin.WrapF(r.Checker.HTTPHandler()))
	r.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Engine.Group("/api/v1")

	// Save code routes issue the session tokens, so they stay public
	saveCodes := v1.Group("/save-codes")
	{
		saveCodes.POST("", saveCodeHandler.CreateSaveCode)
		saveCodes.GET("/:code", saveCodeHandler.GetSaveCode)
		saveCodes.GET("/:code/characters", sessionAuth, saveCodeHandler.ListCharacters)
	}

	// Catalogs are read-only reference data
	v1.GET("/life-events", catalogHandler.ListLifeEvents)
	v1.GET("/careers", catalogHandler.ListCareers)

	characters := v1.Group("/characters")
	{
		characters.POST("", characterHandler.CreateCharacter)
		characters.GET("", characterHandler.ListCharacters)
		characters.GET("/:id", characterHandler.GetCharacter)
		characters.PUT("/:id", characterHandler.UpdateCharacter)
		characters.DELETE("/:id", characterHandler.DeleteCharacter)
		characters.POST("/:id/age-up", characterHandler.AgeUp)
		characters.POST("/:id/career", characterHandler.CareerAction)
		characters.POST("/:id/activities", characterHandler.DoActivity)
		characters.GET("/:id/relationships", characterHandler.ListRelationships)
	}

	// WebSocket feed of age-up events
	if r.Container.Hub != nil {
		r.Engine.GET("/ws/characters/:id", characterHandler.LiveEvents)
	}
}

// CORS must allow the WebSocket upgrade headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, X-CSRF-Token, Authorization, Origin, Upgrade, Connection, Cache-Control")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Upgrade, Connection")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
