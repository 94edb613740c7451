// Package cache holds the optional read-through cache for leaderboards.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/config"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LeaderboardCache stores ranked rows per test. A miss is (nil, false, nil).
//
// Every Invalidate bumps the test's generation. Readers take the generation before querying
// the database and pass it to Set, which drops the rows if an invalidation happened since.
type LeaderboardCache interface {
	Get(ctx context.Context, testID uuid.UUID) ([]dto.RankRowDTO, bool, error)
	Generation(ctx context.Context, testID uuid.UUID) (int64, error)
	Set(ctx context.Context, testID uuid.UUID, generation int64, rows []dto.RankRowDTO) error
	Invalidate(ctx context.Context, testID uuid.UUID) error
}

// NewLeaderboardCache returns a Redis-backed cache when REDIS_ADDR is set, otherwise a no-op.
func NewLeaderboardCache(cfg *config.Config, client *redis.Client) LeaderboardCache {
	if client == nil {
		log.Info().Msg("Leaderboard cache disabled (no REDIS_ADDR)")
		return NoopLeaderboardCache{}
	}
	return NewRedisLeaderboardCache(client, cfg.Redis.LeaderboardTTL)
}

// NewRedisClient returns nil when Redis is not configured.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

type redisLeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLeaderboardCache(client *redis.Client, ttl time.Duration) LeaderboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisLeaderboardCache{client: client, ttl: ttl}
}

func leaderboardKey(testID uuid.UUID) string {
	return fmt.Sprintf("leaderboard:%s", testID)
}

func generationKey(testID uuid.UUID) string {
	return fmt.Sprintf("leaderboard:%s:gen", testID)
}

func (c *redisLeaderboardCache) Get(ctx context.Context, testID uuid.UUID) ([]dto.RankRowDTO, bool, error) {
	raw, err := c.client.Get(ctx, leaderboardKey(testID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var rows []dto.RankRowDTO
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false, fmt.Errorf("decode cached leaderboard: %w", err)
	}
	return rows, true, nil
}

func (c *redisLeaderboardCache) Generation(ctx context.Context, testID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(testID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set writes under WATCH on the generation key, so an Invalidate racing with it aborts the write.
func (c *redisLeaderboardCache) Set(ctx context.Context, testID uuid.UUID, generation int64, rows []dto.RankRowDTO) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	genKey := generationKey(testID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, leaderboardKey(testID), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *redisLeaderboardCache) Invalidate(ctx context.Context, testID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(testID))
		pipe.Del(ctx, leaderboardKey(testID))
		return nil
	})
	return err
}

// NoopLeaderboardCache always misses.
type NoopLeaderboardCache struct{}

func (NoopLeaderboardCache) Get(context.Context, uuid.UUID) ([]dto.RankRowDTO, bool, error) {
	return nil, false, nil
}

func (NoopLeaderboardCache) Generation(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (NoopLeaderboardCache) Set(context.Context, uuid.UUID, int64, []dto.RankRowDTO) error {
	return nil
}

func (NoopLeaderboardCache) Invalidate(context.Context, uuid.UUID) error { return nil }
