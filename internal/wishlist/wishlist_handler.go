package wishlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-store-api/internal/pkg/response"
	"go-store-api/internal/session"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) AddItem(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	if err := h.service.Add(ctx, sessionID, ctx.Param("productId")); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Item added to wishlist", nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	if err := h.service.Remove(ctx, sessionID, ctx.Param("productId")); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Item removed from wishlist", nil)
}

func (h *Handler) MoveToCart(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	res, err := h.service.MoveToCart(ctx, sessionID, ctx.Param("productId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Item moved to cart", res)
}

func (h *Handler) List(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	res, err := h.service.List(ctx, sessionID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Count(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	count, err := h.service.Count(ctx, sessionID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", CountResponse{Count: count})
}
