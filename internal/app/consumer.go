package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"go-store-api/internal/cart"
	"go-store-api/internal/catalog"
	"go-store-api/internal/email"
	"go-store-api/internal/events"
	"go-store-api/internal/messaging/kafka/consumer"
	"go-store-api/internal/order"
	"go-store-api/internal/outbox"
	"go-store-api/internal/payment"
	"go-store-api/internal/storage"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting order events consumer...")

	// 1. Connect to Redis
	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	origin := uuid.NewString()
	bus := events.NewBus()
	store := storage.NewRedisStore(redisClient, origin)

	catalogClient := catalog.NewClient(
		os.Getenv("CATALOG_BASE_URL"),
		os.Getenv("IMAGE_BASE_URL"),
	)

	cartService := cart.NewService(cart.NewRepository(store), catalogClient, bus)
	orderService := order.NewService(order.Deps{
		Repo:       order.NewRepository(store),
		OutboxRepo: outbox.NewRepository(redisClient),
		CartSvc:    cartService,
		PaymentSvc: payment.NewPaystackService(),
	})

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("[CONSUMER] Email disabled: %v", err)
		emailService = email.NewNoopService()
	}

	// 2. Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "receipt-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// 3. Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, orderService, emailService)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
