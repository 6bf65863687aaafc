package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/pkg/config"
	"life-sim-game/backend/pkg/logger"
	"life-sim-game/backend/pkg/resilience"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps serialized character snapshots in Redis so that
// read-heavy endpoints skip Postgres. Every write path invalidates the
// key; a miss or a Redis outage just falls through to the database.
type SnapshotCache struct {
	client  *redis.Client
	ttl     time.Duration
	log     *logger.Logger
	breaker *resilience.CircuitBreaker
}

// NewSnapshotCache connects to Redis using the application config.
// It returns nil when Redis is disabled or unreachable so callers can
// wire the service without a cache.
func NewSnapshotCache(log *logger.Logger) *SnapshotCache {
	cfg := config.Get()
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, snapshot cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		return nil
	}

	return &SnapshotCache{
		client:  client,
		ttl:     cfg.Redis.TTL,
		log:     log,
		breaker: resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("redis-snapshots"), log),
	}
}

func characterKey(id uint) string {
	return "character:snapshot:" + strconv.FormatUint(uint64(id), 10)
}

// GetCharacter returns a cached snapshot if one exists.
func (c *SnapshotCache) GetCharacter(id uint) (*models.Character, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var data []byte
	err := c.breaker.Execute(func() error {
		var getErr error
		data, getErr = c.client.Get(ctx, characterKey(id)).Bytes()
		if getErr == redis.Nil {
			data = nil
			return nil
		}
		return getErr
	})
	if err != nil {
		c.log.Warn("Snapshot cache read failed", "characterId", id, "error", err.Error())
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var character models.Character
	if err := json.Unmarshal(data, &character); err != nil {
		c.log.Warn("Snapshot cache entry corrupt, evicting", "characterId", id, "error", err.Error())
		c.Invalidate(id)
		return nil, false
	}

	return &character, true
}

// SetCharacter stores a snapshot with the configured TTL.
func (c *SnapshotCache) SetCharacter(character *models.Character) {
	data, err := json.Marshal(character)
	if err != nil {
		c.log.Warn("Snapshot cache marshal failed", "characterId", character.ID, "error", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, characterKey(character.ID), data, c.ttl).Err()
	})
	if err != nil {
		c.log.Warn("Snapshot cache write failed", "characterId", character.ID, "error", err.Error())
	}
}

// Invalidate removes a snapshot after a mutation.
func (c *SnapshotCache) Invalidate(id uint) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := c.breaker.Execute(func() error {
		return c.client.Del(ctx, characterKey(id)).Err()
	})
	if err != nil {
		c.log.Warn("Snapshot cache invalidation failed", "characterId", id, "error", err.Error())
	}
}

// Ping reports Redis round-trip latency for health checks.
func (c *SnapshotCache) Ping() (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	if err := c.client.Ping(ctx).Err(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
