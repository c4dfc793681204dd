package order

import (
	"context"
	"encoding/json"

	"go-store-api/internal/storage"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	LoadOrder(ctx context.Context, sessionID string) (*Order, error)
	SaveOrder(ctx context.Context, sessionID string, o *Order) error
	LoadCustomer(ctx context.Context, sessionID string) (*CustomerSnapshot, error)
	SaveCustomer(ctx context.Context, sessionID string, c CustomerSnapshot) error
}

type orderRepository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &orderRepository{store: store}
}

// LoadOrder returns (nil, nil) when the session has never placed an order.
func (r *orderRepository) LoadOrder(ctx context.Context, sessionID string) (*Order, error) {
	data, err := r.store.Load(ctx, sessionID, storage.SlotOrder)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, nil
	}
	return &o, nil
}

func (r *orderRepository) SaveOrder(ctx context.Context, sessionID string, o *Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, sessionID, storage.SlotOrder, data)
}

func (r *orderRepository) LoadCustomer(ctx context.Context, sessionID string) (*CustomerSnapshot, error) {
	data, err := r.store.Load(ctx, sessionID, storage.SlotCustomer)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var c CustomerSnapshot
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, nil
	}
	return &c, nil
}

func (r *orderRepository) SaveCustomer(ctx context.Context, sessionID string, c CustomerSnapshot) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, sessionID, storage.SlotCustomer, data)
}
