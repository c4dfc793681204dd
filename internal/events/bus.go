// Package events carries the storefront's change notifications: every cart
// or wishlist mutation broadcasts a signal with no payload, and consumers
// re-read the storage slot on receipt.
package events

import "sync"

type Topic string

const (
	TopicCartUpdated     Topic = "cartUpdated"
	TopicWishlistUpdated Topic = "wishlistUpdated"

	// TopicStorageChanged is the external-change signal: another process
	// wrote to a storage slot we may have cached.
	TopicStorageChanged Topic = "storageChanged"
)

// Event identifies which session's slot changed. No payload beyond that.
type Event struct {
	Topic   Topic
	Session string
	Slot    string
}

type Handler func(Event)

type Bus interface {
	Publish(e Event)
	Subscribe(topic Topic, h Handler) (unsubscribe func())
}

type memoryBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[Topic]map[int]Handler
}

func NewBus() Bus {
	return &memoryBus{
		handlers: make(map[Topic]map[int]Handler),
	}
}

func (b *memoryBus) Publish(e Event) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[e.Topic]))
	for _, h := range b.handlers[e.Topic] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	// Delivered synchronously, outside the lock, so handlers may subscribe
	// or publish in turn.
	for _, h := range hs {
		h(e)
	}
}

func (b *memoryBus) Subscribe(topic Topic, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[topic], id)
	}
}
