package receipt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-store-api/internal/receipt"
)

func TestRender(t *testing.T) {
	placed := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	out, err := receipt.Render(receipt.Data{
		OrderNumber:    "BTF-1717238000-9F2C",
		PlacedAt:       placed,
		ConfirmedAt:    placed.Add(5 * time.Minute),
		CustomerName:   "Ada Obi",
		CustomerEmail:  "ada@example.com",
		DeliveryOption: "ship",
		Address:        "12 Marina Rd, Lagos, Lagos",
		Lines: []receipt.Line{
			{Name: "Rose Serum", Quantity: 2, UnitPrice: "₦100.00", Total: "₦200.00"},
			{Name: "Shea Butter", Quantity: 1, UnitPrice: "₦50.00", Total: "₦50.00"},
		},
		Subtotal:    "₦250.00",
		Tax:         "₦25.00",
		ShippingFee: "₦5.00",
		Total:       "₦280.00",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "BEAUTIFY")
	assert.Contains(t, out, "BTF-1717238000-9F2C")
	assert.Contains(t, out, "Ada Obi")
	assert.Contains(t, out, "Rose Serum")
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "Total    : ₦280.00")
	assert.Contains(t, out, "Ship to  : 12 Marina Rd, Lagos, Lagos")
}

func TestRenderPickupOmitsAddress(t *testing.T) {
	out, err := receipt.Render(receipt.Data{
		OrderNumber:    "BTF-1717238000-AB12",
		PlacedAt:       time.Now(),
		ConfirmedAt:    time.Now(),
		CustomerName:   "Ada Obi",
		CustomerEmail:  "ada@example.com",
		DeliveryOption: "pickup",
		Total:          "₦110.00",
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "Ship to")
}
