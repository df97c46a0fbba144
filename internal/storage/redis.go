package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const saveKeyPrefix = "save:"

// Ensure RedisStore implements Store interface
var _ Store = (*RedisStore)(nil)

// RedisStore keeps save slots in Redis, one key per slot, no TTL.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(redisURL string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

func (r *RedisStore) Save(ctx context.Context, name string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	key := saveKeyPrefix + SanitizeName(name)
	if err := r.client.Set(ctx, key, string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save snapshot", "slot", name, "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, name string) (*Snapshot, error) {
	key := saveKeyPrefix + SanitizeName(name)
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("save %q is corrupt: %w", name, err)
	}
	return &snap, nil
}

func (r *RedisStore) List(ctx context.Context) ([]SaveInfo, error) {
	var infos []SaveInfo
	iter := r.client.Scan(ctx, 0, saveKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		name := strings.TrimPrefix(key, saveKeyPrefix)
		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			r.logger.Warn("skipping unreadable save", "slot", name, "error", err)
			continue
		}
		var snap Snapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			r.logger.Warn("skipping corrupt save", "slot", name, "error", err)
			continue
		}
		infos = append(infos, SaveInfo{Name: name, SavedAt: snap.SavedAt})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan saves: %w", err)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})
	return infos, nil
}
