package order

import (
	"net/http"

	"go-store-api/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrInvalidDeliveryOption = apperror.New(
		apperror.CodeInvalidInput,
		"Delivery option must be 'ship' or 'pickup'",
		http.StatusBadRequest,
	)

	ErrUnsupportedDeliveryOption = apperror.New(
		apperror.CodeInvalidInput,
		"Pickup is not available yet, please choose shipping",
		http.StatusBadRequest,
	)

	ErrMissingShippingInfo = apperror.New(
		apperror.CodeInvalidInput,
		"Shipping details are required for delivery",
		http.StatusBadRequest,
	)

	ErrInvalidCustomerInfo = apperror.New(
		apperror.CodeInvalidInput,
		"Customer name and a valid email are required",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"No order found for this session",
		http.StatusNotFound,
	)

	ErrPaymentFailed = apperror.New(
		apperror.CodeConflict,
		"Payment was not successful",
		http.StatusPaymentRequired,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeConflict,
		"Order is not in a state that allows this action",
		http.StatusConflict,
	)

	ErrReceiptUnavailable = apperror.New(
		apperror.CodeConflict,
		"Receipt is only available for confirmed orders",
		http.StatusConflict,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process order",
		http.StatusInternalServerError,
	)
)
