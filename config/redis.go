package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Modeva-Ecommerce/modeva-storefront/logger"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects the client used by the rate limiter.
func ConnectRedis(cfg *Configuration) error {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	logger.Get().Infof("✅ Connected to Redis: %s", res)
	return nil
}
