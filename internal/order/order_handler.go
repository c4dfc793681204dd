package order

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

func (h *Handler) Checkout(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	// A signed-in customer's identity overrides whatever the form carried.
	if name := ctx.GetString(session.KeyCustomerName); name != "" {
		req.Customer.Name = name
	}
	if email := ctx.GetString(session.KeyCustomerEmail); email != "" {
		req.Customer.Email = email
	}

	res, err := h.service.Checkout(ctx, sessionID, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Order placed, awaiting payment", res)
}

func (h *Handler) ConfirmPayment(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	var req PaymentActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	res, err := h.service.ConfirmPayment(ctx, sessionID, req.Reference)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Payment confirmed", res)
}

func (h *Handler) CancelPayment(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	var req PaymentActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	if err := h.service.CancelPayment(ctx, sessionID, req.Reference); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Payment cancelled", nil)
}

func (h *Handler) Current(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	res, err := h.service.Current(ctx, sessionID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Receipt(ctx *gin.Context) {
	sessionID := ctx.GetString(session.KeySessionID)

	text, err := h.service.Receipt(ctx, sessionID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, text)
}
