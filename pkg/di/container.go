package di

import (
	"life-sim-game/backend/internal/game"
	"life-sim-game/backend/internal/repository"
	"life-sim-game/backend/internal/service"
	"life-sim-game/backend/internal/ws"
	"life-sim-game/backend/pkg/cache"
	"life-sim-game/backend/pkg/config"
	"life-sim-game/backend/pkg/jwt"
	"life-sim-game/backend/pkg/logger"
	"life-sim-game/backend/shared/observability"
	sharedredis "life-sim-game/backend/shared/redis"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application
type Container struct {
	DB                  *gorm.DB
	Logger              *logger.Logger
	JWTService          *jwt.Service
	Hub                 *ws.Hub
	SnapshotCache       *sharedredis.SnapshotCache
	CatalogService      *service.CatalogService
	SaveCodeService     *service.SaveCodeService
	RelationshipService *service.RelationshipService
	CharacterService    *service.CharacterService
}

// New wires repositories, the game engine and services together.
func New(db *gorm.DB, log *logger.Logger) *Container {
	cfg := config.Get()

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	characters := repository.NewGormCharacterRepository(db)
	saveCodes := repository.NewGormSaveCodeRepository(db)
	relationships := repository.NewGormRelationshipRepository(db)
	lifeEvents := repository.NewGormLifeEventRepository(db)
	careers := repository.NewGormCareerRepository(db)

	// A fixed seed makes a whole run reproducible for debugging.
	var rng game.Rand
	if cfg.Game.RandomSeed != 0 {
		rng = game.NewRand(cfg.Game.RandomSeed)
	} else {
		rng = game.NewTimeRand()
	}
	engine := game.New(rng)

	catalogCache := cache.NewCacheWithOptions(cfg.Cache.TTL, cfg.Cache.PurgeWindow, cfg.Cache.MaxSize)
	catalogService := service.NewCatalogService(lifeEvents, careers, catalogCache, log)
	saveCodeService := service.NewSaveCodeService(saveCodes, characters, jwtService)
	relationshipService := service.NewRelationshipService(relationships, characters, rng)

	characterService := service.NewCharacterService(characters, saveCodes, catalogService, relationshipService, engine, log).
		WithMetrics(observability.NewGameMetrics())

	snapshots := sharedredis.NewSnapshotCache(log)
	if snapshots != nil {
		characterService = characterService.WithSnapshotCache(snapshots)
	}

	var hub *ws.Hub
	if cfg.Game.EnableLiveEvents {
		hub = ws.NewHub(log)
		characterService = characterService.WithNotifier(hub)
	}

	return &Container{
		DB:                  db,
		Logger:              log,
		JWTService:          jwtService,
		Hub:                 hub,
		SnapshotCache:       snapshots,
		CatalogService:      catalogService,
		SaveCodeService:     saveCodeService,
		RelationshipService: relationshipService,
		CharacterService:    characterService,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
