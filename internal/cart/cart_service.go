package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"go-store-api/internal/catalog"
	"go-store-api/internal/events"
	"go-store-api/internal/pkg/money"
	"go-store-api/internal/storage"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, sessionID, productID string) (AddItemResponse, error)
	Remove(ctx context.Context, sessionID, productID string) error
	AdjustQuantity(ctx context.Context, sessionID, productID string, dir Direction) error
	Clear(ctx context.Context, sessionID string) error

	Items(ctx context.Context, sessionID string) ([]LineItem, error)
	Detail(ctx context.Context, sessionID string) (CartDetailResponse, error)
	Count(ctx context.Context, sessionID string) (int64, error)
}

type service struct {
	repo    Repository
	catalog catalog.Client
	bus     events.Bus

	// Per-session write-through cache of the durable cart. Dropped when the
	// relay reports an external write to the same slot (last writer wins).
	mu    sync.Mutex
	cache map[string][]LineItem
}

func NewService(repo Repository, catalogClient catalog.Client, bus events.Bus) Service {
	s := &service{
		repo:    repo,
		catalog: catalogClient,
		bus:     bus,
		cache:   make(map[string][]LineItem),
	}

	bus.Subscribe(events.TopicStorageChanged, func(e events.Event) {
		if e.Slot != storage.SlotCart {
			return
		}
		s.mu.Lock()
		delete(s.cache, e.Session)
		s.mu.Unlock()
	})

	return s
}

// load returns the session's cart, from cache when fresh, copying so
// callers never alias cached state.
func (s *service) load(ctx context.Context, sessionID string) ([]LineItem, error) {
	s.mu.Lock()
	cached, ok := s.cache[sessionID]
	s.mu.Unlock()

	if !ok {
		loaded, err := s.repo.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[sessionID] = loaded
		s.mu.Unlock()
		cached = loaded
	}

	items := make([]LineItem, len(cached))
	copy(items, cached)
	return items, nil
}

// persist writes the cart through to storage, refreshes the cache and
// broadcasts cartUpdated. Every mutating operation ends here, no-ops
// included, so observers like the badge counter stay simple.
func (s *service) persist(ctx context.Context, sessionID string, items []LineItem) error {
	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[sessionID] = items
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Topic:   events.TopicCartUpdated,
		Session: sessionID,
		Slot:    storage.SlotCart,
	})
	return nil
}

// Add inserts the product as a fresh quantity-1 line item. Re-adding a
// product already in the cart is a no-op that reports Added=false rather
// than bumping the quantity.
func (s *service) Add(ctx context.Context, sessionID, productID string) (AddItemResponse, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return AddItemResponse{}, err
	}

	for _, item := range items {
		if item.ProductID == productID {
			// Persist and notify anyway so every observer refreshes.
			if err := s.persist(ctx, sessionID, items); err != nil {
				return AddItemResponse{}, err
			}
			return AddItemResponse{Added: false, Message: "Item already in cart"}, nil
		}
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return AddItemResponse{}, err
	}

	items = append(items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	})

	if err := s.persist(ctx, sessionID, items); err != nil {
		return AddItemResponse{}, err
	}
	return AddItemResponse{Added: true, Message: "Item added to cart"}, nil
}

// Remove deletes the matching line item. Removing something that isn't
// there is a no-op, not an error.
func (s *service) Remove(ctx context.Context, sessionID, productID string) error {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	return s.persist(ctx, sessionID, kept)
}

// AdjustQuantity moves a line item's quantity by one. Decrease floors at 1:
// quantity never reaches 0 here, removal is its own operation.
func (s *service) AdjustQuantity(ctx context.Context, sessionID, productID string, dir Direction) error {
	if dir != DirectionIncrease && dir != DirectionDecrease {
		return ErrInvalidDirection
	}

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		switch dir {
		case DirectionIncrease:
			items[i].Quantity++
		case DirectionDecrease:
			if items[i].Quantity > 1 {
				items[i].Quantity--
			}
		}
	}

	return s.persist(ctx, sessionID, items)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[sessionID] = []LineItem{}
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Topic:   events.TopicCartUpdated,
		Session: sessionID,
		Slot:    storage.SlotCart,
	})
	return nil
}

func (s *service) Items(ctx context.Context, sessionID string) ([]LineItem, error) {
	return s.load(ctx, sessionID)
}

func (s *service) Detail(ctx context.Context, sessionID string) (CartDetailResponse, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	res := CartDetailResponse{Items: make([]CartItemResponse, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
		total = total.Add(lineTotal)
		res.Items = append(res.Items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: money.FormatNaira(item.UnitPrice),
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			Total:     money.FormatNaira(money.Round2(lineTotal)),
		})
	}
	res.ItemCount = len(items)
	res.TotalPrice = money.FormatNaira(money.Round2(total))
	return res, nil
}

// Count is the badge number: distinct line items, not summed quantities.
func (s *service) Count(ctx context.Context, sessionID string) (int64, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}
