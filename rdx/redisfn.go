package rdx

import (
	"log"
	"os"
	"time"

	"voyara/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s: %v", addr, err)
	}
}

func Set(key, value string, expiration time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, expiration).Err()
}

func Get(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func Del(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}
