package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gameblob/models"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes the Redis connection
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

const (
	gameCachePrefix         = "game:"
	gamesCacheKey           = "games:all"
	commentCountCachePrefix = "comments:count:"
)

func set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

func get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func del(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// GetGame returns a cached catalog entry
func GetGame(gameID uint) (*models.Game, error) {
	var game models.Game
	if err := get(fmt.Sprintf("%s%d", gameCachePrefix, gameID), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// SetGame caches a catalog entry for 1 hour
func SetGame(game *models.Game) error {
	return set(fmt.Sprintf("%s%d", gameCachePrefix, game.ID), game, time.Hour)
}

// InvalidateGame removes a catalog entry and the listing from cache
func InvalidateGame(gameID uint) error {
	if err := del(fmt.Sprintf("%s%d", gameCachePrefix, gameID)); err != nil {
		return err
	}
	return del(gamesCacheKey)
}

// GetGames returns the cached catalog listing
func GetGames() ([]models.Game, error) {
	var games []models.Game
	if err := get(gamesCacheKey, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// SetGames caches the catalog listing for 5 minutes
func SetGames(games []models.Game) error {
	return set(gamesCacheKey, games, 5*time.Minute)
}

// GetCommentCount returns the cached comment total for a game
func GetCommentCount(gameID uint) (int64, error) {
	var count int64
	if err := get(fmt.Sprintf("%s%d", commentCountCachePrefix, gameID), &count); err != nil {
		return 0, err
	}
	return count, nil
}

// SetCommentCount caches the comment total for 5 minutes
func SetCommentCount(gameID uint, count int64) error {
	return set(fmt.Sprintf("%s%d", commentCountCachePrefix, gameID), count, 5*time.Minute)
}

// InvalidateCommentCount drops the cached total after a new comment
func InvalidateCommentCount(gameID uint) error {
	return del(fmt.Sprintf("%s%d", commentCountCachePrefix, gameID))
}
