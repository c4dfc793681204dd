package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"go-store-api/internal/email"
	"go-store-api/internal/order"
)

type orderConfirmedPayload struct {
	Session     string `json:"session"`
	OrderNumber string `json:"orderNumber"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

// handleOrderConfirmed renders the receipt for the confirmed order and
// emails it to the customer. A missing email address is not a failure; the
// receipt simply stays available over the API.
func handleOrderConfirmed(ctx context.Context, payload []byte, orderService order.Service, emailService email.Service) error {
	var p orderConfirmedPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("invalid ORDER_CONFIRMED payload: %w", err)
	}

	if p.Email == "" {
		log.Printf("[CONSUMER] Order %s confirmed without an email address, skipping receipt email", p.OrderNumber)
		return nil
	}

	receiptText, err := orderService.Receipt(ctx, p.Session)
	if err != nil {
		return fmt.Errorf("failed to render receipt for order %s: %w", p.OrderNumber, err)
	}

	if err := emailService.SendOrderReceipt(ctx, p.Email, p.Name, receiptText); err != nil {
		return fmt.Errorf("failed to send receipt for order %s: %w", p.OrderNumber, err)
	}

	log.Printf("[CONSUMER] Receipt for order %s sent to %s", p.OrderNumber, p.Email)
	return nil
}
