package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jsonchan000/fin-news-ai/internal/model"
)

const seenSetKey = "finnews:seen_urls"

// RedisSeenStore keeps the seen set in a Redis set, for deployments where the
// working directory is not durable.
type RedisSeenStore struct {
	client *redis.Client
}

func NewRedisSeenStore(client *redis.Client) *RedisSeenStore {
	return &RedisSeenStore{client: client}
}

func (s *RedisSeenStore) Load() (model.SeenSet, error) {
	urls, err := s.client.SMembers(context.Background(), seenSetKey).Result()
	if err != nil {
		return nil, err
	}
	return model.NewSeenSet(urls...), nil
}

// Save replaces the stored set atomically: DEL plus SADD in one transaction,
// so a reader never observes a partially written set.
func (s *RedisSeenStore) Save(seen model.SeenSet) error {
	ctx := context.Background()

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, seenSetKey)
	if seen.Len() > 0 {
		urls := seen.Slice()
		members := make([]interface{}, len(urls))
		for i, u := range urls {
			members[i] = u
		}
		pipe.SAdd(ctx, seenSetKey, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
