package results

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the log as a Redis list under StorageKey, one JSON entry
// per attempt.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Append(ctx context.Context, r StoredResult) error {
	buf, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, StorageKey, buf).Err()
}

func (s *RedisStore) Latest(ctx context.Context, sessionFilename string) (StoredResult, error) {
	all, err := s.All(ctx)
	if err != nil {
		return StoredResult{}, err
	}
	return latest(all, sessionFilename)
}

func (s *RedisStore) All(ctx context.Context) ([]StoredResult, error) {
	raw, err := s.client.LRange(ctx, StorageKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	all := make([]StoredResult, 0, len(raw))
	for _, entry := range raw {
		var r StoredResult
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			log.Printf("results: skipping corrupt redis entry: %v", err)
			continue
		}
		all = append(all, r)
	}
	return all, nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
