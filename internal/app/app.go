package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-store-api/internal/catalog"
	"go-store-api/internal/events"
	"go-store-api/internal/payment"
	"go-store-api/internal/storage"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// Each process gets its own origin so the change relay can tell local
	// writes from external ones.
	origin := uuid.NewString()

	bus := events.NewBus()
	relay := events.NewRedisRelay(redisClient, bus, origin)
	relay.Start(context.Background())

	store := storage.NewRedisStore(redisClient, origin)

	// 2. Setup Third Party Services
	catalogClient := catalog.NewClient(
		os.Getenv("CATALOG_BASE_URL"),
		os.Getenv("IMAGE_BASE_URL"),
	)
	paymentService := payment.NewPaystackService()

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	// 3. Register Modules & Routes
	registerModules(router, store, redisClient, bus, catalogClient, paymentService, logger)

	return nil
}
