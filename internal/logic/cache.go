package logic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/cricpredict/winprob-api/internal/models"
)

// RedisCache implements CacheStore using Redis
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// CacheConfig configures the inference cache
type CacheConfig struct {
	// Prefix namespaces keys, normally by model name and version so a new
	// artifact never reads the previous one's outputs.
	Prefix string
	TTL    time.Duration
}

// CachedClassifier memoizes model output per feature record. Concurrent
// misses for the same record share a single inference. Store failures are
// logged and bypassed.
type CachedClassifier struct {
	next   Classifier
	store  CacheStore
	cfg    CacheConfig
	group  singleflight.Group
	logger *zap.SugaredLogger
}

func NewCachedClassifier(next Classifier, store CacheStore, cfg CacheConfig, logger *zap.SugaredLogger) *CachedClassifier {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "winprob"
	}
	return &CachedClassifier{next: next, store: store, cfg: cfg, logger: logger}
}

func (c *CachedClassifier) PredictProba(ctx context.Context, rec models.FeatureRecord) ([2]float64, error) {
	key, err := c.key(rec)
	if err != nil {
		return c.next.PredictProba(ctx, rec)
	}

	if b, ok, err := c.store.Get(ctx, key); err != nil {
		cacheLookups.WithLabelValues("error").Inc()
		c.logger.Warnw("Inference cache read failed", "error", err)
	} else if ok {
		var proba [2]float64
		if err := json.Unmarshal(b, &proba); err == nil {
			cacheLookups.WithLabelValues("hit").Inc()
			return proba, nil
		}
		c.logger.Warnw("Discarding malformed cache entry", "key", key)
	} else {
		cacheLookups.WithLabelValues("miss").Inc()
	}

	// The shared call serves every waiter on key, so one caller going away
	// must not cancel it for the others
	shared := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		proba, err := c.next.PredictProba(shared, rec)
		if err != nil {
			return nil, err
		}
		if b, err := json.Marshal(proba); err == nil {
			if err := c.store.Set(shared, key, b, c.cfg.TTL); err != nil {
				c.logger.Warnw("Inference cache write failed", "error", err)
			}
		}
		return proba, nil
	})
	if err != nil {
		return [2]float64{}, err
	}
	return v.([2]float64), nil
}

// Ping reports whether the backing store is reachable.
func (c *CachedClassifier) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// key hashes the full feature record so keys stay short and free of team
// names with spaces or punctuation.
func (c *CachedClassifier) key(rec models.FeatureRecord) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:proba:%s", c.cfg.Prefix, hex.EncodeToString(sum[:])), nil
}
