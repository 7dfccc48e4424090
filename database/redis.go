package database

import (
	"context"
	"log"
	"time"

	"tour_manager/config"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func ConnectRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.App.RedisAddr,
		Password: config.App.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Println("redis unavailable:", err)
	}
}

// BlacklistToken marks a refresh jti as revoked until it would expire anyway.
// Best effort: a Redis outage is logged, not fatal.
func BlacklistToken(jti string, ttl time.Duration) {
	if RedisClient == nil || ttl <= 0 {
		return
	}
	if err := RedisClient.Set(context.Background(), "blacklist:"+jti, "1", ttl).Err(); err != nil {
		log.Println("failed to blacklist token:", err)
	}
}

// IsTokenBlacklisted fails open: if Redis cannot answer, the token passes.
func IsTokenBlacklisted(jti string) bool {
	if RedisClient == nil {
		return false
	}
	n, err := RedisClient.Exists(context.Background(), "blacklist:"+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
