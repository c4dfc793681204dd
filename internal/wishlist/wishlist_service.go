package wishlist

import (
	"context"

	"go-store-api/internal/cart"
	"go-store-api/internal/catalog"
	"go-store-api/internal/events"
	"go-store-api/internal/pkg/money"
	"go-store-api/internal/storage"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, sessionID, productID string) error
	Remove(ctx context.Context, sessionID, productID string) error
	MoveToCart(ctx context.Context, sessionID, productID string) (cart.AddItemResponse, error)
	List(ctx context.Context, sessionID string) (ListResponse, error)
	Count(ctx context.Context, sessionID string) (int64, error)
}

type service struct {
	repo    Repository
	catalog catalog.Client
	cartSvc cart.Service
	bus     events.Bus
}

func NewService(repo Repository, catalogClient catalog.Client, cartSvc cart.Service, bus events.Bus) Service {
	return &service{
		repo:    repo,
		catalog: catalogClient,
		cartSvc: cartSvc,
		bus:     bus,
	}
}

func (s *service) notify(sessionID string) {
	s.bus.Publish(events.Event{
		Topic:   events.TopicWishlistUpdated,
		Session: sessionID,
		Slot:    storage.SlotWishlist,
	})
}

// Add saves the product. Unlike the cart, re-adding is a conflict, not a
// silent no-op.
func (s *service) Add(ctx context.Context, sessionID, productID string) error {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ProductID == productID {
			return ErrItemAlreadyExists
		}
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return err
	}

	items = append(items, Item{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		ImageURL:  product.ImageURL,
	})

	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return err
	}
	s.notify(sessionID)
	return nil
}

func (s *service) Remove(ctx context.Context, sessionID, productID string) error {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrItemNotFound
	}

	if err := s.repo.Save(ctx, sessionID, kept); err != nil {
		return err
	}
	s.notify(sessionID)
	return nil
}

// MoveToCart adds the saved product to the cart, then drops it from the
// wishlist. The wishlist entry survives if the cart write fails.
func (s *service) MoveToCart(ctx context.Context, sessionID, productID string) (cart.AddItemResponse, error) {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return cart.AddItemResponse{}, err
	}

	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			break
		}
	}
	if !found {
		return cart.AddItemResponse{}, ErrItemNotFound
	}

	res, err := s.cartSvc.Add(ctx, sessionID, productID)
	if err != nil {
		return cart.AddItemResponse{}, err
	}

	if err := s.Remove(ctx, sessionID, productID); err != nil {
		return cart.AddItemResponse{}, err
	}
	return res, nil
}

func (s *service) List(ctx context.Context, sessionID string) (ListResponse, error) {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return ListResponse{}, err
	}

	res := ListResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		res.Items = append(res.Items, ItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: money.FormatNaira(item.UnitPrice),
			ImageURL:  item.ImageURL,
		})
	}
	res.ItemCount = len(items)
	return res, nil
}

func (s *service) Count(ctx context.Context, sessionID string) (int64, error) {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}
