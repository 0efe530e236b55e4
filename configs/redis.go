package configs

import (
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Redis() *redis.Client {
	return redisClient
}

func ConnectionRedis(cfg *Config) {
	redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
