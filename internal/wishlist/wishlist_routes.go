package wishlist

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	{
		wishlists.GET("", handler.List)
		wishlists.GET("/count", handler.Count)

		items := wishlists.Group("/items/:productId")
		{
			items.POST("", handler.AddItem)
			items.DELETE("", handler.RemoveItem)
			items.POST("/move-to-cart", handler.MoveToCart)
		}
	}
}
