// Package storage is the durable slot store behind carts, wishlists, orders
// and customer snapshots: one JSON document per (session, slot) pair. It is
// the single owner of persisted state; services hold at most a cache of it.
package storage

import "context"

// Slot names. Each session owns one document per slot.
const (
	SlotCart     = "cart"
	SlotWishlist = "wishlist"
	SlotOrder    = "order"
	SlotCustomer = "customer"
)

// Store loads and saves whole slot documents. There are no partial writes.
// Load returns (nil, nil) for an absent slot; callers treat absence and
// corruption alike as the empty value.
type Store interface {
	Load(ctx context.Context, session, slot string) ([]byte, error)
	Save(ctx context.Context, session, slot string, data []byte) error
	Delete(ctx context.Context, session, slot string) error
}
