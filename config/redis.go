package config

import (
	"context"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance. It stays nil when REDIS_ADDR
// is unset; callers treat nil as "no second-level cache".
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})
}

func RedisCtx() context.Context {
	return context.Background()
}
