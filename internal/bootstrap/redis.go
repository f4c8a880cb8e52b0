package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects the rate-limiter backend. An empty addr disables
// limiting and returns nil.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
