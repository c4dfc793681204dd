package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// StorageChannel is the pub/sub channel storage implementations announce
// slot writes on.
const StorageChannel = "storefront:storage"

// ChangeNotice is the wire form of a storage-change announcement. Origin
// identifies the writing process so it can skip its own notices.
type ChangeNotice struct {
	Origin  string `json:"origin"`
	Session string `json:"session"`
	Slot    string `json:"slot"`
}

// RedisRelay republishes storage-change notices from other processes onto
// the local bus. This is the cross-tab path: a different API instance (or a
// worker) rewrote a slot, and any cached copy here is stale.
type RedisRelay struct {
	rdb    *redis.Client
	bus    Bus
	origin string
}

func NewRedisRelay(rdb *redis.Client, bus Bus, origin string) *RedisRelay {
	return &RedisRelay{rdb: rdb, bus: bus, origin: origin}
}

func (r *RedisRelay) Start(ctx context.Context) {
	sub := r.rdb.Subscribe(ctx, StorageChannel)

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var notice ChangeNotice
				if err := json.Unmarshal([]byte(msg.Payload), &notice); err != nil {
					log.Printf("[RELAY] malformed change notice: %v", err)
					continue
				}
				if notice.Origin == r.origin {
					continue
				}
				r.bus.Publish(Event{
					Topic:   TopicStorageChanged,
					Session: notice.Session,
					Slot:    notice.Slot,
				})
			}
		}
	}()
}
