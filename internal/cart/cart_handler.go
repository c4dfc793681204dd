package cart

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
	productID := ctx.Param("productId")

	res, err := h.service.Add(ctx, sessionID, productID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	status := http.StatusCreated
	if !res.Added {
		status = http.StatusOK
	}
	response.Success(ctx, status, res.Message, res)
}

func (h *Handler) AdjustQty(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	var req AdjustQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	if err := h.service.AdjustQuantity(
		ctx,
		sessionID,
		ctx.Param("productId"),
		Direction(req.Direction),
	); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Quantity updated", nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	if err := h.service.Remove(ctx, sessionID, ctx.Param("productId")); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Item removed from cart", nil)
}

func (h *Handler) Detail(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	res, err := h.service.Detail(ctx, sessionID)
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

	response.Success(ctx, http.StatusOK, "", CartCountResponse{Count: count})
}

func (h *Handler) Clear(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	if err := h.service.Clear(ctx, sessionID); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Cart cleared", nil)
}
