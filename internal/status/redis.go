package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"docstyle/internal/config"
	"docstyle/internal/model"
)

const redisKeyPrefix = "docstyle:status:"

// RedisStore keeps each history as a redis list of JSON events.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewRedisStore returns a Store on client. Keys expire ttl after their last
// update; a zero ttl keeps them forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(documentID string) string {
	return redisKeyPrefix + documentID
}

func (r *RedisStore) Append(ctx context.Context, ev model.StageEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	key := redisKey(ev.DocumentID)
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, b)
		if r.ttl > 0 {
			p.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	return err
}

func (r *RedisStore) History(ctx context.Context, documentID string) ([]model.StageEvent, error) {
	items, err := r.client.LRange(ctx, redisKey(documentID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	out := make([]model.StageEvent, 0, len(items))
	for _, it := range items {
		var ev model.StageEvent
		if err := json.Unmarshal([]byte(it), &ev); err != nil {
			return nil, fmt.Errorf("decode status event: %w", err)
		}
		out = append(out, ev)
	}
	return out, nil
}
