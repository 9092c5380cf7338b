package app

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	moviesCacheKey = "cache:movies"
	foodCacheKey   = "cache:food"

	cacheTTL = 5 * time.Minute
)

// cacheGet reads a cached JSON value into dst. A miss, a decode error or an
// unreachable Redis all report false so callers fall through to the database.
func (app *application) cacheGet(ctx context.Context, key string, dst any) bool {
	if app.redis == nil {
		return false
	}

	payload, err := app.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			app.logger.Error("failed to read from cache", "key", key, "error", err)
		}
		return false
	}

	err = json.Unmarshal(payload, dst)
	if err != nil {
		app.logger.Error("failed to decode cached value", "key", key, "error", err)
		return false
	}

	return true
}

func (app *application) cacheSet(ctx context.Context, key string, value any) {
	if app.redis == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		app.logger.Error("failed to encode value for cache", "key", key, "error", err)
		return
	}

	err = app.redis.Set(ctx, key, payload, cacheTTL).Err()
	if err != nil {
		app.logger.Error("failed to write to cache", "key", key, "error", err)
	}
}

func (app *application) cacheInvalidate(ctx context.Context, key string) {
	if app.redis == nil {
		return
	}

	err := app.redis.Del(ctx, key).Err()
	if err != nil {
		app.logger.Error("failed to invalidate cache", "key", key, "error", err)
	}
}
