package comune

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const cacheKeyPrefix = "catasto:comune:"

type cachedComune struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Provincia string    `json:"provincia"`
	Regione   string    `json:"regione"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisCache stores comuni as JSON strings under catasto:comune:{id}.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache returns a cache whose entries expire after ttl. A zero ttl
// keeps entries forever.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(id int64) string {
	return cacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *RedisCache) Get(ctx context.Context, id int64) (*catasto.Comune, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("getting comune %d from cache: %w", id, err)
	}

	var cached cachedComune
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("decoding cached comune %d: %w", id, err)
	}

	return &catasto.Comune{
		ID:        cached.ID,
		Nome:      cached.Nome,
		Provincia: cached.Provincia,
		Regione:   cached.Regione,
		CreatedAt: cached.CreatedAt,
	}, true, nil
}

func (c *RedisCache) Put(ctx context.Context, comune *catasto.Comune) error {
	data, err := json.Marshal(cachedComune{
		ID:        comune.ID,
		Nome:      comune.Nome,
		Provincia: comune.Provincia,
		Regione:   comune.Regione,
		CreatedAt: comune.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encoding comune %d: %w", comune.ID, err)
	}

	if err := c.client.Set(ctx, cacheKey(comune.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching comune %d: %w", comune.ID, err)
	}

	return nil
}
