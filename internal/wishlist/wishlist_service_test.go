package wishlist_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-store-api/internal/cart"
	"go-store-api/internal/catalog"
	"go-store-api/internal/events"
	cartMock "go-store-api/internal/mock/cart"
	catalogMock "go-store-api/internal/mock/catalog"
	"go-store-api/internal/storage"
	"go-store-api/internal/wishlist"
)

type fixture struct {
	svc           wishlist.Service
	catalogClient *catalogMock.MockClient
	cartSvc       *cartMock.MockService
	bus           events.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		catalogClient: catalogMock.NewMockClient(ctrl),
		cartSvc:       cartMock.NewMockService(ctrl),
		bus:           events.NewBus(),
	}
	repo := wishlist.NewRepository(storage.NewMemoryStore())
	f.svc = wishlist.NewService(repo, f.catalogClient, f.cartSvc, f.bus)
	return f
}

func product(id, name, price string) catalog.Product {
	return catalog.Product{
		ID:        id,
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adds_product", func(t *testing.T) {
		f := newFixture(t)
		f.catalogClient.EXPECT().Product(gomock.Any(), "p1").Return(product("p1", "Rose Serum", "100"), nil)

		var published int
		f.bus.Subscribe(events.TopicWishlistUpdated, func(events.Event) { published++ })

		require.NoError(t, f.svc.Add(ctx, "sess", "p1"))

		count, err := f.svc.Count(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, 1, published)
	})

	t.Run("duplicate_is_a_conflict", func(t *testing.T) {
		f := newFixture(t)
		f.catalogClient.EXPECT().Product(gomock.Any(), "p1").Return(product("p1", "Rose Serum", "100"), nil).Times(1)

		require.NoError(t, f.svc.Add(ctx, "sess", "p1"))

		err := f.svc.Add(ctx, "sess", "p1")
		assert.ErrorIs(t, err, wishlist.ErrItemAlreadyExists)

		count, err := f.svc.Count(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestWishlistService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_item", func(t *testing.T) {
		f := newFixture(t)
		f.catalogClient.EXPECT().Product(gomock.Any(), "p1").Return(product("p1", "Rose Serum", "100"), nil)

		require.NoError(t, f.svc.Add(ctx, "sess", "p1"))
		require.NoError(t, f.svc.Remove(ctx, "sess", "p1"))

		count, err := f.svc.Count(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("absent_item_is_not_found", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Remove(ctx, "sess", "ghost")
		assert.ErrorIs(t, err, wishlist.ErrItemNotFound)
	})
}

func TestWishlistService_MoveToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("moves_saved_item", func(t *testing.T) {
		f := newFixture(t)
		f.catalogClient.EXPECT().Product(gomock.Any(), "p1").Return(product("p1", "Rose Serum", "100"), nil)
		f.cartSvc.EXPECT().
			Add(gomock.Any(), "sess", "p1").
			Return(cart.AddItemResponse{Added: true, Message: "Item added to cart"}, nil)

		require.NoError(t, f.svc.Add(ctx, "sess", "p1"))

		res, err := f.svc.MoveToCart(ctx, "sess", "p1")
		require.NoError(t, err)
		assert.True(t, res.Added)

		count, err := f.svc.Count(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("unsaved_item_is_not_found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.MoveToCart(ctx, "sess", "ghost")
		assert.ErrorIs(t, err, wishlist.ErrItemNotFound)
	})

	t.Run("failed_cart_add_keeps_wishlist_entry", func(t *testing.T) {
		f := newFixture(t)
		f.catalogClient.EXPECT().Product(gomock.Any(), "p1").Return(product("p1", "Rose Serum", "100"), nil)
		f.cartSvc.EXPECT().
			Add(gomock.Any(), "sess", "p1").
			Return(cart.AddItemResponse{}, assert.AnError)

		require.NoError(t, f.svc.Add(ctx, "sess", "p1"))

		_, err := f.svc.MoveToCart(ctx, "sess", "p1")
		assert.Error(t, err)

		count, err := f.svc.Count(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestWishlistService_List(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.catalogClient.EXPECT().Product(gomock.Any(), "p1").Return(product("p1", "Rose Serum", "99.50"), nil)

	require.NoError(t, f.svc.Add(ctx, "sess", "p1"))

	res, err := f.svc.List(ctx, "sess")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Rose Serum", res.Items[0].Name)
	assert.Equal(t, "₦99.50", res.Items[0].UnitPrice)
	assert.Equal(t, 1, res.ItemCount)
}
