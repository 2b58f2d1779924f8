package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis opens the client backing the rate limiter. The service refuses
// to start without it since login and password recovery depend on throttling.
func ConnectRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, falling back to", url)
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		panic(fmt.Sprintf("❌ REDIS_URL is not a valid Redis URL: %v", err))
	}
	RedisClient = redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(Ctx, 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(pingCtx).Err(); err != nil {
		panic(fmt.Sprintf("❌ could not reach Redis at startup: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}
