// pkg/publish/redis.go

package publish

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"OneBRC/pkg/agg"
	"OneBRC/pkg/utils"
)

var logger = utils.GetLogger("onebrc")

const keyPrefix = "onebrc:"
const latestKey = keyPrefix + "latest"

// Redis publishes run summaries into a Redis database.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects lazily to the Redis server at url
// (redis://[user:pass@]host:port/db).
func NewRedis(url string, retries int, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %s", url, err)
	}
	if opt.Password == "" && os.Getenv("REDIS_PASSWORD") != "" {
		opt.Password = os.Getenv("REDIS_PASSWORD")
	}
	opt.MaxRetries = retries
	opt.MinRetryBackoff = time.Millisecond * 100
	opt.MaxRetryBackoff = time.Minute * 1
	opt.ReadTimeout = time.Second * 30
	opt.WriteTimeout = time.Second * 5
	return &Redis{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func runKey(runID string) string {
	return keyPrefix + "run:" + runID
}

// fields maps every station to its min/mean/max summary.
func fields(res *agg.Result) map[string]interface{} {
	m := make(map[string]interface{}, len(res.Stations))
	for i := range res.Stations {
		s := &res.Stations[i]
		m[s.Name] = s.Summary()
	}
	return m
}

// Publish stores res under the run key and points the latest key at it,
// in one transaction.
func (r *Redis) Publish(ctx context.Context, runID string, res *agg.Result) error {
	key := runKey(runID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(res.Stations) > 0 {
			pipe.HSet(ctx, key, fields(res))
		}
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		pipe.Set(ctx, latestKey, runID, r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish %s: %s", key, err)
	}
	logger.Infof("published %d stations to %s", len(res.Stations), key)
	return nil
}

// Load reads back the summaries of a run.
func (r *Redis) Load(ctx context.Context, runID string) (map[string]string, error) {
	return r.rdb.HGetAll(ctx, runKey(runID)).Result()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
