package order

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	{
		orders.POST("/checkout", handler.Checkout)
		orders.POST("/payment/confirm", handler.ConfirmPayment)
		orders.POST("/payment/cancel", handler.CancelPayment)
		orders.GET("/current", handler.Current)
		orders.GET("/current/receipt", handler.Receipt)
	}
}
