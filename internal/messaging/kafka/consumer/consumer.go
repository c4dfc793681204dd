package consumer

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"

	"go-store-api/internal/email"
	"go-store-api/internal/order"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, orderService order.Service, emailService email.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == "ORDER_CONFIRMED" {
			if err := handleOrderConfirmed(ctx, msg.Value, orderService, emailService); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_CONFIRMED: %v", err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
