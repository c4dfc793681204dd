package wishlist

import (
	"context"
	"encoding/json"
	"log"

	"go-store-api/internal/storage"
)

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]Item, error)
	Save(ctx context.Context, sessionID string, items []Item) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

// Load rehydrates the wishlist from its slot; absence and corruption both
// read as an empty list.
func (r *repository) Load(ctx context.Context, sessionID string) ([]Item, error) {
	data, err := r.store.Load(ctx, sessionID, storage.SlotWishlist)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[WISHLIST] malformed wishlist slot for session %s, treating as empty: %v", sessionID, err)
		return []Item{}, nil
	}
	return items, nil
}

func (r *repository) Save(ctx context.Context, sessionID string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, sessionID, storage.SlotWishlist, data)
}
