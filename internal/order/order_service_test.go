package order_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-store-api/internal/cart"
	cartMock "go-store-api/internal/mock/cart"
	outboxMock "go-store-api/internal/mock/outbox"
	paymentMock "go-store-api/internal/mock/payment"
	"go-store-api/internal/order"
	"go-store-api/internal/payment"
	"go-store-api/internal/storage"
)

type fixture struct {
	svc        order.Service
	repo       order.Repository
	cartSvc    *cartMock.MockService
	paymentSvc *paymentMock.MockService
	outboxRepo *outboxMock.MockRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:       order.NewRepository(storage.NewMemoryStore()),
		cartSvc:    cartMock.NewMockService(ctrl),
		paymentSvc: paymentMock.NewMockService(ctrl),
		outboxRepo: outboxMock.NewMockRepository(ctrl),
	}
	f.svc = order.NewService(order.Deps{
		Repo:       f.repo,
		OutboxRepo: f.outboxRepo,
		CartSvc:    f.cartSvc,
		PaymentSvc: f.paymentSvc,
	})
	return f
}

func cartItems() []cart.LineItem {
	return []cart.LineItem{
		{ProductID: "p1", Name: "Rose Serum", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		{ProductID: "p2", Name: "Shea Butter", UnitPrice: decimal.NewFromInt(50), Quantity: 1},
	}
}

func shipRequest() order.CheckoutRequest {
	return order.CheckoutRequest{
		DeliveryOption: "ship",
		Customer:       order.CustomerDetails{Name: "Ada Obi", Email: "ada@example.com"},
		Shipping: &order.ShippingDetails{
			State:         "Lagos",
			City:          "Lagos",
			StreetAddress: "12 Marina Rd",
		},
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_cart_rejected", func(t *testing.T) {
		f := newFixture(t)
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return([]cart.LineItem{}, nil)

		_, err := f.svc.Checkout(ctx, "sess", shipRequest())
		assert.ErrorIs(t, err, order.ErrCartEmpty)
	})

	t.Run("pickup_rejected_but_selectable", func(t *testing.T) {
		f := newFixture(t)
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)

		req := shipRequest()
		req.DeliveryOption = "pickup"

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrUnsupportedDeliveryOption)
	})

	t.Run("unknown_delivery_option_rejected", func(t *testing.T) {
		f := newFixture(t)
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)

		req := shipRequest()
		req.DeliveryOption = "teleport"

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrInvalidDeliveryOption)
	})

	t.Run("missing_shipping_leaves_cart_untouched", func(t *testing.T) {
		f := newFixture(t)
		// No Clear expectation: the cart must not be modified.
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)

		req := shipRequest()
		req.Shipping = nil

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrMissingShippingInfo)

		current, err := f.repo.LoadOrder(ctx, "sess")
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("incomplete_shipping_rejected", func(t *testing.T) {
		f := newFixture(t)
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)

		req := shipRequest()
		req.Shipping.City = ""

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrMissingShippingInfo)
	})

	t.Run("invalid_customer_rejected", func(t *testing.T) {
		f := newFixture(t)
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)

		req := shipRequest()
		req.Customer.Email = "not-an-email"

		_, err := f.svc.Checkout(ctx, "sess", req)
		assert.ErrorIs(t, err, order.ErrInvalidCustomerInfo)
	})

	t.Run("success_assembles_snapshot_without_clearing_cart", func(t *testing.T) {
		f := newFixture(t)
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)

		var initReq payment.InitializeRequest
		f.paymentSvc.EXPECT().
			Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error) {
				initReq = req
				return &payment.InitializeResponse{
					AuthorizationURL: "https://checkout.paystack.com/abc",
					AccessCode:       "abc",
					Reference:        req.Reference,
				}, nil
			})
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_PLACED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Checkout(ctx, "sess", shipRequest())
		require.NoError(t, err)

		// 250 subtotal + 25 tax + 5 shipping, in minor units.
		assert.Equal(t, int64(28000), initReq.Amount)
		assert.Equal(t, "NGN", initReq.Currency)
		assert.Equal(t, "ada@example.com", initReq.Email)

		assert.Equal(t, order.StatusAwaitingPayment, res.Status)
		assert.True(t, strings.HasPrefix(res.OrderNumber, "BTF-"))
		assert.Equal(t, "₦280.00", res.Total)
		assert.Equal(t, "https://checkout.paystack.com/abc", res.AuthorizationURL)

		saved, err := f.repo.LoadOrder(ctx, "sess")
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, order.StatusAwaitingPayment, saved.Status)
		require.Len(t, saved.LineItems, 2)
		assert.Equal(t, "Rose Serum", saved.LineItems[0].Name)
		assert.Equal(t, int32(2), saved.LineItems[0].Quantity)

		customer, err := f.repo.LoadCustomer(ctx, "sess")
		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, "ada@example.com", customer.Email)
	})
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, f *fixture) string {
		t.Helper()
		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)
		f.paymentSvc.EXPECT().
			Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error) {
				return &payment.InitializeResponse{Reference: req.Reference}, nil
			})
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_PLACED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Checkout(ctx, "sess", shipRequest())
		require.NoError(t, err)
		return res.Reference
	}

	t.Run("success_confirms_and_clears_cart", func(t *testing.T) {
		f := newFixture(t)
		ref := place(t, f)

		f.paymentSvc.EXPECT().
			Verify(gomock.Any(), ref).
			Return(&payment.VerifyResponse{Reference: ref, Status: "success", Amount: 28000}, nil)
		f.cartSvc.EXPECT().Clear(gomock.Any(), "sess").Return(nil)
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_CONFIRMED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.ConfirmPayment(ctx, "sess", ref)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, res.Status)
		assert.NotNil(t, res.ConfirmedAt)

		saved, err := f.repo.LoadOrder(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, saved.Status)
	})

	t.Run("already_confirmed_is_a_noop", func(t *testing.T) {
		f := newFixture(t)
		ref := place(t, f)

		f.paymentSvc.EXPECT().
			Verify(gomock.Any(), ref).
			Return(&payment.VerifyResponse{Reference: ref, Status: "success"}, nil).
			Times(1)
		f.cartSvc.EXPECT().Clear(gomock.Any(), "sess").Return(nil).Times(1)
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_CONFIRMED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		_, err := f.svc.ConfirmPayment(ctx, "sess", ref)
		require.NoError(t, err)

		// Second confirm: no verify, no clear, no event.
		res, err := f.svc.ConfirmPayment(ctx, "sess", ref)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, res.Status)
	})

	t.Run("failed_charge_marks_order_failed", func(t *testing.T) {
		f := newFixture(t)
		ref := place(t, f)

		f.paymentSvc.EXPECT().
			Verify(gomock.Any(), ref).
			Return(&payment.VerifyResponse{Reference: ref, Status: "abandoned"}, nil)

		_, err := f.svc.ConfirmPayment(ctx, "sess", ref)
		assert.ErrorIs(t, err, order.ErrPaymentFailed)

		saved, err := f.repo.LoadOrder(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, order.StatusFailed, saved.Status)
	})

	t.Run("unknown_reference_rejected", func(t *testing.T) {
		f := newFixture(t)
		place(t, f)

		_, err := f.svc.ConfirmPayment(ctx, "sess", "BTF-0-XXXX")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestCancelPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("marks_failed_and_leaves_cart_alone", func(t *testing.T) {
		f := newFixture(t)

		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)
		f.paymentSvc.EXPECT().
			Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error) {
				return &payment.InitializeResponse{Reference: req.Reference}, nil
			})
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_PLACED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil)
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_FAILED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Checkout(ctx, "sess", shipRequest())
		require.NoError(t, err)

		require.NoError(t, f.svc.CancelPayment(ctx, "sess", res.Reference))

		saved, err := f.repo.LoadOrder(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, order.StatusFailed, saved.Status)

		// A failed order cannot be confirmed afterwards.
		_, err = f.svc.ConfirmPayment(ctx, "sess", res.Reference)
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable_before_confirmation", func(t *testing.T) {
		f := newFixture(t)

		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)
		f.paymentSvc.EXPECT().
			Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error) {
				return &payment.InitializeResponse{Reference: req.Reference}, nil
			})
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), "ORDER_PLACED", "ORDER", gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.Checkout(ctx, "sess", shipRequest())
		require.NoError(t, err)

		_, err = f.svc.Receipt(ctx, "sess")
		assert.ErrorIs(t, err, order.ErrReceiptUnavailable)
	})

	t.Run("renders_confirmed_order", func(t *testing.T) {
		f := newFixture(t)

		f.cartSvc.EXPECT().Items(gomock.Any(), "sess").Return(cartItems(), nil)
		f.paymentSvc.EXPECT().
			Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error) {
				return &payment.InitializeResponse{Reference: req.Reference}, nil
			})
		f.paymentSvc.EXPECT().
			Verify(gomock.Any(), gomock.Any()).
			Return(&payment.VerifyResponse{Status: "success"}, nil)
		f.cartSvc.EXPECT().Clear(gomock.Any(), "sess").Return(nil)
		f.outboxRepo.EXPECT().
			Append(gomock.Any(), gomock.Any(), "ORDER", gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		res, err := f.svc.Checkout(ctx, "sess", shipRequest())
		require.NoError(t, err)
		_, err = f.svc.ConfirmPayment(ctx, "sess", res.Reference)
		require.NoError(t, err)

		text, err := f.svc.Receipt(ctx, "sess")
		require.NoError(t, err)

		assert.Contains(t, text, res.OrderNumber)
		assert.Contains(t, text, "Ada Obi")
		assert.Contains(t, text, "Rose Serum")
		assert.Contains(t, text, "₦280.00")
	})

	t.Run("no_order_yet", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Receipt(ctx, "sess")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}
