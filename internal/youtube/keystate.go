package youtube

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asal3ti/charizard/pkg/hash"
)

// RedisMarks stores exhausted-key marks in Redis so every replica skips a key
// once any of them hits its quota. A nil client makes every call a no-op.
type RedisMarks struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisMarks(rdb *redis.Client) *RedisMarks {
	return &RedisMarks{rdb: rdb, now: time.Now}
}

func (m *RedisMarks) Exhausted(ctx context.Context, key string) bool {
	if m == nil || m.rdb == nil {
		return false
	}
	n, err := m.rdb.Exists(ctx, markKey(key)).Result()
	return err == nil && n > 0
}

// MarkExhausted records key as out of quota until the next quota reset.
func (m *RedisMarks) MarkExhausted(ctx context.Context, key string) {
	if m == nil || m.rdb == nil {
		return
	}
	m.rdb.Set(ctx, markKey(key), "1", untilQuotaReset(m.now()))
}

// markKey never embeds the raw API key.
func markKey(key string) string {
	return "yt:quota:" + hash.KeyFingerprint(key)
}
