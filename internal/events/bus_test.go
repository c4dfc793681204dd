package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-store-api/internal/events"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := events.NewBus()

	var got []events.Event
	unsub := bus.Subscribe(events.TopicCartUpdated, func(e events.Event) {
		got = append(got, e)
	})

	bus.Publish(events.Event{Topic: events.TopicCartUpdated, Session: "s1", Slot: "cart"})
	bus.Publish(events.Event{Topic: events.TopicWishlistUpdated, Session: "s1", Slot: "wishlist"})

	assert.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].Session)

	unsub()
	bus.Publish(events.Event{Topic: events.TopicCartUpdated, Session: "s1", Slot: "cart"})
	assert.Len(t, got, 1)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := events.NewBus()

	count := 0
	bus.Subscribe(events.TopicCartUpdated, func(events.Event) { count++ })
	bus.Subscribe(events.TopicCartUpdated, func(events.Event) { count++ })

	bus.Publish(events.Event{Topic: events.TopicCartUpdated})
	assert.Equal(t, 2, count)
}
