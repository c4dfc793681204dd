package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"go-store-api/internal/events"
)

type redisStore struct {
	rdb    *redis.Client
	origin string
}

// NewRedisStore returns a Store over Redis. Every Save and Delete announces
// the changed slot on the storage pub/sub channel so other processes can
// drop stale caches; origin lets this process skip its own announcements.
func NewRedisStore(rdb *redis.Client, origin string) Store {
	return &redisStore{rdb: rdb, origin: origin}
}

func (s *redisStore) key(session, slot string) string {
	return fmt.Sprintf("storefront:%s:%s", session, slot)
}

func (s *redisStore) Load(ctx context.Context, session, slot string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.key(session, slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisStore) Save(ctx context.Context, session, slot string, data []byte) error {
	if err := s.rdb.Set(ctx, s.key(session, slot), data, 0).Err(); err != nil {
		return err
	}
	s.announce(ctx, session, slot)
	return nil
}

func (s *redisStore) Delete(ctx context.Context, session, slot string) error {
	if err := s.rdb.Del(ctx, s.key(session, slot)).Err(); err != nil {
		return err
	}
	s.announce(ctx, session, slot)
	return nil
}

func (s *redisStore) announce(ctx context.Context, session, slot string) {
	payload, _ := json.Marshal(events.ChangeNotice{
		Origin:  s.origin,
		Session: session,
		Slot:    slot,
	})
	// Best effort: a lost notice means a stale cache until the next write,
	// never lost data.
	_ = s.rdb.Publish(ctx, events.StorageChannel, payload).Err()
}
