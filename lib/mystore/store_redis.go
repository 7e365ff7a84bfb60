package mystore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

type redisStore[T any] struct {
	client *redis.Client
	prefix string
}

func newRedisStore[T any](c context.Context, cfg Config) (*redisStore[T], func(), error) {
	if cfg.Addr == "" {
		return nil, nil, fmt.Errorf("redis store requires an address")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := client.Ping(c).Err()
	if err != nil {
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "gcalgateway"
	}

	return &redisStore[T]{
			client: client,
			prefix: fmt.Sprintf("%s:%s:", prefix, kindOf[T]()),
		}, func() {
			client.Close()
		}, nil
}

func (s *redisStore[T]) key(uid string) string {
	return s.prefix + uid
}

func (s *redisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling record %s: %s", uid, err)
	}

	return s.client.Set(c, s.key(uid), data, 0).Err()
}

func (s *redisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	raw, err := s.client.Get(c, s.key(uid)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return *value, false, nil
		}

		return *value, false, fmt.Errorf("error fetching record %s: %s", uid, err)
	}

	err = json.Unmarshal(raw, value)
	if err != nil {
		return *value, false, fmt.Errorf("error unmarshalling record %s: %s", uid, err)
	}

	return *value, true, nil
}

func (s *redisStore[T]) Remove(c context.Context, uid string) error {
	return s.client.Del(c, s.key(uid)).Err()
}

func (s *redisStore[T]) List(c context.Context) ([]T, error) {
	var cursor uint64
	result := []T{}
	pattern := s.prefix + "*"

	for {
		keys, nextCursor, err := s.client.Scan(c, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("error scanning records: %s", err)
		}

		for _, key := range keys {
			raw, err := s.client.Get(c, key).Bytes()
			if err != nil {
				if err == redis.Nil {
					continue
				}

				return nil, fmt.Errorf("error fetching record %s: %s", strings.TrimPrefix(key, s.prefix), err)
			}

			value := new(T)
			err = json.Unmarshal(raw, value)
			if err != nil {
				return nil, fmt.Errorf("error unmarshalling record %s: %s", strings.TrimPrefix(key, s.prefix), err)
			}

			result = append(result, *value)
		}

		if nextCursor == 0 {
			break
		}
		cursor = nextCursor
	}

	return result, nil
}
