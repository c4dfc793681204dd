package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-store-api/internal/cart"
	"go-store-api/internal/catalog"
	"go-store-api/internal/events"
	"go-store-api/internal/order"
	"go-store-api/internal/outbox"
	"go-store-api/internal/payment"
	"go-store-api/internal/session"
	"go-store-api/internal/storage"
	"go-store-api/internal/wishlist"
)

func registerModules(
	router *gin.Engine,
	store storage.Store,
	redisClient *redis.Client,
	bus events.Bus,
	catalogClient catalog.Client,
	paymentService payment.Service,
	logger *zap.Logger,
) {
	// --- Repositories ---
	cartRepo := cart.NewRepository(store)
	wishlistRepo := wishlist.NewRepository(store)
	orderRepo := order.NewRepository(store)
	outboxRepo := outbox.NewRepository(redisClient)

	// --- Services ---
	cartService := cart.NewService(cartRepo, catalogClient, bus)
	wishlistService := wishlist.NewService(wishlistRepo, catalogClient, cartService, bus)
	orderService := order.NewService(order.Deps{
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		CartSvc:    cartService,
		PaymentSvc: paymentService,
		Logger:     logger,
	})

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	orderHandler := order.NewHandler(orderService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(session.Middleware(), session.OptionalAuth())
	{
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		order.RegisterRoutes(api, orderHandler)
	}
}
