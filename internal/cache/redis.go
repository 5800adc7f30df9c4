package cache

import (
    "context"
    "crypto/sha256"
    "encoding/hex"
    "fmt"
    "time"

    redis "github.com/redis/go-redis/v9"

    "github.com/local/genrelay/internal/ai"
)

// RedisCache is an optional read-through cache for generation results.
// Disabled by default; with it off every request goes straight to the model
// and the service holds no shared state.
type RedisCache struct {
    client *redis.Client
    ttl    time.Duration
    keyNS  string
}

// New connects to Redis and verifies the connection.
func New(redisURL string, ttl time.Duration) (*RedisCache, error) {
    opt, err := redis.ParseURL(redisURL)
    if err != nil { return nil, err }
    c := redis.NewClient(opt)
    if err := c.Ping(context.Background()).Err(); err != nil { return nil, err }
    return &RedisCache{client: c, ttl: ttl, keyNS: "gen"}, nil
}

// Key derives a stable cache key from the dispatched parts.
func Key(parts []ai.Part) string {
    h := sha256.New()
    for _, p := range parts {
        h.Write([]byte(p.MIMEType))
        h.Write([]byte{0})
        h.Write([]byte(p.Text))
        h.Write([]byte{0})
        h.Write([]byte(p.Data))
        h.Write([]byte{0})
    }
    return hex.EncodeToString(h.Sum(nil))
}

func (c *RedisCache) key(k string) string { return fmt.Sprintf("%s:%s:output", c.keyNS, k) }

func (c *RedisCache) Get(ctx context.Context, k string) (string, bool, error) {
    val, err := c.client.Get(ctx, c.key(k)).Result()
    if err == redis.Nil {
        return "", false, nil
    }
    if err != nil {
        return "", false, err
    }
    return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, k, output string) error {
    return c.client.Set(ctx, c.key(k), output, c.ttl).Err()
}

func (c *RedisCache) Close() error { return c.client.Close() }
