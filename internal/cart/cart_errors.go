package cart

import (
	"net/http"

	"go-store-api/internal/pkg/apperror"
)

var (
	ErrInvalidDirection = apperror.New(
		apperror.CodeInvalidInput,
		"Direction must be increase or decrease",
		http.StatusBadRequest,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)
