package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-store-api/internal/cart"
	"go-store-api/internal/outbox"
	"go-store-api/internal/payment"
	"go-store-api/internal/pkg/money"
	"go-store-api/internal/pricing"
	"go-store-api/internal/receipt"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, sessionID, reference string) (OrderResponse, error)
	CancelPayment(ctx context.Context, sessionID, reference string) error
	Current(ctx context.Context, sessionID string) (OrderResponse, error)
	Receipt(ctx context.Context, sessionID string) (string, error)
}

type service struct {
	repo       Repository
	outboxRepo outbox.Repository
	cartSvc    cart.Service
	paymentSvc payment.Service
	logger     *zap.Logger
	validate   *validator.Validate
}

type Deps struct {
	Repo       Repository
	OutboxRepo outbox.Repository
	CartSvc    cart.Service
	PaymentSvc payment.Service
	Logger     *zap.Logger
}

var statusTransitions = map[string]map[string]struct{}{
	StatusAwaitingPayment: {
		StatusConfirmed: {},
		StatusFailed:    {},
	},
	StatusConfirmed: {},
	StatusFailed:    {},
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.PaymentSvc == nil {
		panic("payment service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		cartSvc:    deps.CartSvc,
		paymentSvc: deps.PaymentSvc,
		logger:     deps.Logger,
		validate:   validator.New(),
	}
}

func canTransition(from, to string) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// newOrderNumber builds a durable, human-readable order number. It is also
// used as the payment reference so provider callbacks can be correlated.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("BTF-%d-%s", now.Unix(), suffix)
}

// Checkout validates the request, freezes the cart into an order snapshot
// and initializes payment. The cart is left untouched: it only clears once
// payment is confirmed, so an abandoned checkout costs the shopper nothing.
func (s *service) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (CheckoutResponse, error) {
	items, err := s.cartSvc.Items(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(items) == 0 {
		return CheckoutResponse{}, ErrCartEmpty
	}

	delivery := pricing.DeliveryOption(req.DeliveryOption)
	if !delivery.Valid() {
		return CheckoutResponse{}, ErrInvalidDeliveryOption
	}
	if delivery == pricing.DeliveryPickup {
		return CheckoutResponse{}, ErrUnsupportedDeliveryOption
	}

	if err := s.validate.Struct(req.Customer); err != nil {
		return CheckoutResponse{}, ErrInvalidCustomerInfo
	}
	if req.Shipping == nil {
		return CheckoutResponse{}, ErrMissingShippingInfo
	}
	if err := s.validate.Struct(req.Shipping); err != nil {
		return CheckoutResponse{}, ErrMissingShippingInfo
	}

	quote := pricing.Calculate(items, delivery)
	now := time.Now().UTC()
	orderNumber := newOrderNumber(now)

	init, err := s.paymentSvc.Initialize(ctx, payment.InitializeRequest{
		Email:     req.Customer.Email,
		Amount:    money.ToMinorUnits(quote.Total),
		Currency:  pricing.Currency,
		Reference: orderNumber,
		Metadata: map[string]string{
			"orderNumber": orderNumber,
			"session":     sessionID,
		},
	})
	if err != nil {
		return CheckoutResponse{}, err
	}

	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	o := &Order{
		ID:              uuid.New(),
		OrderNumber:     orderNumber,
		Status:          StatusAwaitingPayment,
		LineItems:       lines,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		ShippingFee:     quote.ShippingFee,
		Total:           quote.Total,
		DeliveryOption:  string(delivery),
		ShippingAddress: req.Shipping,
		PaymentRef:      init.Reference,
		PlacedAt:        now,
	}

	if err := s.repo.SaveOrder(ctx, sessionID, o); err != nil {
		s.logger.Error("failed to persist order", zap.String("orderNumber", orderNumber), zap.Error(err))
		return CheckoutResponse{}, ErrOrderFailed
	}
	if err := s.repo.SaveCustomer(ctx, sessionID, CustomerSnapshot{
		Name:  req.Customer.Name,
		Email: req.Customer.Email,
	}); err != nil {
		s.logger.Error("failed to persist customer snapshot", zap.String("orderNumber", orderNumber), zap.Error(err))
		return CheckoutResponse{}, ErrOrderFailed
	}

	if err := s.outboxRepo.Append(ctx, "ORDER_PLACED", "ORDER", o.ID.String(), map[string]any{
		"session":     sessionID,
		"orderNumber": orderNumber,
		"total":       o.Total.StringFixed(2),
	}); err != nil {
		s.logger.Warn("failed to append ORDER_PLACED event", zap.String("orderNumber", orderNumber), zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("orderNumber", orderNumber),
		zap.String("session", sessionID),
		zap.String("total", o.Total.StringFixed(2)),
	)

	return CheckoutResponse{
		OrderNumber:      orderNumber,
		Status:           o.Status,
		Total:            money.FormatNaira(money.Round2(o.Total)),
		AuthorizationURL: init.AuthorizationURL,
		Reference:        init.Reference,
	}, nil
}

// ConfirmPayment verifies the charge with the provider and, on success,
// confirms the order and clears the cart. Calling it again for an already
// confirmed order is a no-op.
func (s *service) ConfirmPayment(ctx context.Context, sessionID, reference string) (OrderResponse, error) {
	o, err := s.loadFor(ctx, sessionID, reference)
	if err != nil {
		return OrderResponse{}, err
	}

	if o.Status == StatusConfirmed {
		return toOrderResponse(o), nil
	}
	if !canTransition(o.Status, StatusConfirmed) {
		return OrderResponse{}, ErrInvalidStatus
	}

	verify, err := s.paymentSvc.Verify(ctx, reference)
	if err != nil {
		return OrderResponse{}, err
	}

	if !verify.Succeeded() {
		o.Status = StatusFailed
		if err := s.repo.SaveOrder(ctx, sessionID, o); err != nil {
			return OrderResponse{}, ErrOrderFailed
		}
		s.logger.Warn("payment not successful",
			zap.String("orderNumber", o.OrderNumber),
			zap.String("providerStatus", verify.Status),
		)
		return OrderResponse{}, ErrPaymentFailed
	}

	now := time.Now().UTC()
	o.Status = StatusConfirmed
	o.ConfirmedAt = &now
	if err := s.repo.SaveOrder(ctx, sessionID, o); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	if err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear cart after confirmation",
			zap.String("orderNumber", o.OrderNumber), zap.Error(err))
	}

	customer, err := s.repo.LoadCustomer(ctx, sessionID)
	if err != nil || customer == nil {
		customer = &CustomerSnapshot{}
	}

	if err := s.outboxRepo.Append(ctx, "ORDER_CONFIRMED", "ORDER", o.ID.String(), map[string]any{
		"session":     sessionID,
		"orderNumber": o.OrderNumber,
		"email":       customer.Email,
		"name":        customer.Name,
	}); err != nil {
		s.logger.Warn("failed to append ORDER_CONFIRMED event",
			zap.String("orderNumber", o.OrderNumber), zap.Error(err))
	}

	s.logger.Info("order confirmed", zap.String("orderNumber", o.OrderNumber))
	return toOrderResponse(o), nil
}

// CancelPayment marks the order FAILED. The cart is untouched so the
// shopper can try again from where they left off.
func (s *service) CancelPayment(ctx context.Context, sessionID, reference string) error {
	o, err := s.loadFor(ctx, sessionID, reference)
	if err != nil {
		return err
	}

	if !canTransition(o.Status, StatusFailed) {
		return ErrInvalidStatus
	}

	o.Status = StatusFailed
	if err := s.repo.SaveOrder(ctx, sessionID, o); err != nil {
		return ErrOrderFailed
	}

	if err := s.outboxRepo.Append(ctx, "ORDER_FAILED", "ORDER", o.ID.String(), map[string]any{
		"session":     sessionID,
		"orderNumber": o.OrderNumber,
	}); err != nil {
		s.logger.Warn("failed to append ORDER_FAILED event",
			zap.String("orderNumber", o.OrderNumber), zap.Error(err))
	}

	s.logger.Info("order payment cancelled", zap.String("orderNumber", o.OrderNumber))
	return nil
}

func (s *service) Current(ctx context.Context, sessionID string) (OrderResponse, error) {
	o, err := s.repo.LoadOrder(ctx, sessionID)
	if err != nil {
		return OrderResponse{}, err
	}
	if o == nil {
		return OrderResponse{}, ErrOrderNotFound
	}
	return toOrderResponse(o), nil
}

// Receipt renders the text receipt for the session's confirmed order.
func (s *service) Receipt(ctx context.Context, sessionID string) (string, error) {
	o, err := s.repo.LoadOrder(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if o == nil {
		return "", ErrOrderNotFound
	}
	if o.Status != StatusConfirmed {
		return "", ErrReceiptUnavailable
	}

	customer, err := s.repo.LoadCustomer(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if customer == nil {
		customer = &CustomerSnapshot{}
	}

	lines := make([]receipt.Line, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
		lines = append(lines, receipt.Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: money.FormatNaira(item.UnitPrice),
			Total:     money.FormatNaira(money.Round2(lineTotal)),
		})
	}

	confirmedAt := o.PlacedAt
	if o.ConfirmedAt != nil {
		confirmedAt = *o.ConfirmedAt
	}

	return receipt.Render(receipt.Data{
		OrderNumber:    o.OrderNumber,
		PlacedAt:       o.PlacedAt,
		ConfirmedAt:    confirmedAt,
		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		DeliveryOption: o.DeliveryOption,
		Address:        formatAddress(o.ShippingAddress),
		Lines:          lines,
		Subtotal:       money.FormatNaira(money.Round2(o.Subtotal)),
		Tax:            money.FormatNaira(o.Tax),
		ShippingFee:    money.FormatNaira(o.ShippingFee),
		Total:          money.FormatNaira(money.Round2(o.Total)),
	})
}

// loadFor fetches the session's order and checks the reference matches, so
// a stale or foreign reference can never mutate this session's order.
func (s *service) loadFor(ctx context.Context, sessionID, reference string) (*Order, error) {
	o, err := s.repo.LoadOrder(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.PaymentRef != reference {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func formatAddress(sh *ShippingDetails) string {
	if sh == nil {
		return ""
	}
	parts := []string{sh.StreetAddress, sh.City, sh.State}
	if sh.PostalCode != "" {
		parts = append(parts, sh.PostalCode)
	}
	return strings.Join(parts, ", ")
}

func toOrderResponse(o *Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
		items = append(items, OrderLineResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: money.FormatNaira(item.UnitPrice),
			Total:     money.FormatNaira(money.Round2(lineTotal)),
		})
	}

	return OrderResponse{
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
		DeliveryOption:  o.DeliveryOption,
		Items:           items,
		Subtotal:        money.FormatNaira(money.Round2(o.Subtotal)),
		Tax:             money.FormatNaira(o.Tax),
		ShippingFee:     money.FormatNaira(o.ShippingFee),
		Total:           money.FormatNaira(money.Round2(o.Total)),
		ShippingAddress: o.ShippingAddress,
		PaymentRef:      o.PaymentRef,
		PlacedAt:        o.PlacedAt,
		ConfirmedAt:     o.ConfirmedAt,
	}
}
