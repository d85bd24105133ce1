package sessioncache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "clubcredits:session:"

// Cache stores the session slot in redis.
type Cache struct {
	rdb redis.Cmdable
}

func New(rdb redis.Cmdable) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) Load(ctx context.Context, key string) (string, error) {
	value, err := c.rdb.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		zap.L().Error("can't load session slot", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return value, nil
}

func (c *Cache) Save(ctx context.Context, key, value string) error {
	if err := c.rdb.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		zap.L().Error("can't save session slot", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (c *Cache) Clear(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		zap.L().Error("can't clear session slot", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
