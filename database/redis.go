package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sociable/sociableapi/shared/zaplogger"
)

// ConnectRedis connects to Redis and verifies the connection with a ping
func ConnectRedis(redisURL string) (*redis.Client, error) {
	zaplogger.Info("Connecting to Redis")

	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	redisClient := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	zaplogger.Info("  * connected")

	return redisClient, nil
}
