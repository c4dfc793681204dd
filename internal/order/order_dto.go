package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. AWAITING_PAYMENT moves to exactly one of CONFIRMED or
// FAILED; both are terminal.
const (
	StatusAwaitingPayment = "AWAITING_PAYMENT"
	StatusConfirmed       = "CONFIRMED"
	StatusFailed          = "FAILED"
)

type CustomerDetails struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type ShippingDetails struct {
	State         string `json:"state" validate:"required"`
	City          string `json:"city" validate:"required"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	PostalCode    string `json:"postalCode"`
}

// OrderLine is a line item frozen at checkout. Later cart edits never reach
// an assembled order.
type OrderLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int32           `json:"quantity"`
}

// Order is the session's current order snapshot, one per session slot.
type Order struct {
	ID              uuid.UUID        `json:"id"`
	OrderNumber     string           `json:"orderNumber"`
	Status          string           `json:"status"`
	LineItems       []OrderLine      `json:"lineItems"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Tax             decimal.Decimal  `json:"tax"`
	ShippingFee     decimal.Decimal  `json:"shippingFee"`
	Total           decimal.Decimal  `json:"total"`
	DeliveryOption  string           `json:"deliveryOption"`
	ShippingAddress *ShippingDetails `json:"shippingAddress,omitempty"`
	PaymentRef      string           `json:"paymentRef"`
	PlacedAt        time.Time        `json:"placedAt"`
	ConfirmedAt     *time.Time       `json:"confirmedAt,omitempty"`
}

// CustomerSnapshot is the customer identity captured at checkout, kept in
// its own slot so a later checkout can prefill it.
type CustomerSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	DeliveryOption string           `json:"deliveryOption" binding:"required"`
	Customer       CustomerDetails  `json:"customer" binding:"required"`
	Shipping       *ShippingDetails `json:"shipping"`
}

type PaymentActionRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type CheckoutResponse struct {
	OrderNumber      string `json:"orderNumber"`
	Status           string `json:"status"`
	Total            string `json:"total"`
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
}

type OrderLineResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

type OrderResponse struct {
	OrderNumber     string              `json:"orderNumber"`
	Status          string              `json:"status"`
	DeliveryOption  string              `json:"deliveryOption"`
	Items           []OrderLineResponse `json:"items"`
	Subtotal        string              `json:"subtotal"`
	Tax             string              `json:"tax"`
	ShippingFee     string              `json:"shippingFee"`
	Total           string              `json:"total"`
	ShippingAddress *ShippingDetails    `json:"shippingAddress,omitempty"`
	PaymentRef      string              `json:"paymentRef"`
	PlacedAt        time.Time           `json:"placedAt"`
	ConfirmedAt     *time.Time          `json:"confirmedAt,omitempty"`
}
