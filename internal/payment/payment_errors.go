package payment

import (
	"net/http"

	"go-store-api/internal/pkg/apperror"
)

var (
	ErrNotConfigured = apperror.New(
		apperror.CodeInternalError,
		"Payment provider is not configured",
		http.StatusInternalServerError,
	)

	ErrInitializeFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to initialize payment",
		http.StatusBadGateway,
	)

	ErrVerifyFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to verify payment",
		http.StatusBadGateway,
	)
)
