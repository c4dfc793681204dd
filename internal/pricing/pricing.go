// Package pricing derives the monetary figures for checkout. It is pure:
// no storage, no clock, callable at any time against the cart's current
// contents.
package pricing

import (
	"github.com/shopspring/decimal"

	"go-store-api/internal/cart"
	"go-store-api/internal/pkg/money"
)

type DeliveryOption string

const (
	DeliveryShip   DeliveryOption = "ship"
	DeliveryPickup DeliveryOption = "pickup"
)

func (d DeliveryOption) Valid() bool {
	return d == DeliveryShip || d == DeliveryPickup
}

// Fixed rates observed across the storefront.
var (
	TaxRate = decimal.RequireFromString("0.10")
	ShipFee = decimal.NewFromInt(5)
)

// Currency every amount is denominated in.
const Currency = "NGN"

// Quote holds the derived figures. Values are unrounded decimals; round at
// presentation with money.Round2 so repeated renders never compound error.
type Quote struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// Calculate computes subtotal, tax, shipping and total for the given line
// items and delivery choice. The one canonical total formula:
// subtotal + tax + shippingFee.
func Calculate(items []cart.LineItem, delivery DeliveryOption) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	tax := money.Round2(subtotal.Mul(TaxRate))

	shipping := decimal.Zero
	if delivery == DeliveryShip {
		shipping = ShipFee
	}

	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		ShippingFee: shipping,
		Total:       subtotal.Add(tax).Add(shipping),
	}
}
