package cart

import (
	"context"
	"encoding/json"
	"log"

	"go-store-api/internal/storage"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Clear(ctx context.Context, sessionID string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

// Load rehydrates the cart from its slot. An absent slot is an empty cart;
// so is a slot that fails to parse — persisted-state corruption fails open,
// it is never user-visible.
func (r *repository) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	data, err := r.store.Load(ctx, sessionID, storage.SlotCart)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []LineItem{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[CART] malformed cart slot for session %s, treating as empty: %v", sessionID, err)
		return []LineItem{}, nil
	}
	return items, nil
}

// Save writes the whole cart back. No partial writes.
func (r *repository) Save(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, sessionID, storage.SlotCart, data)
}

func (r *repository) Clear(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, sessionID, storage.SlotCart)
}
