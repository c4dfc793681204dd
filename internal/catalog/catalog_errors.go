package catalog

import (
	"net/http"

	"go-store-api/internal/pkg/apperror"
)

var (
	ErrFetchFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to fetch from catalog",
		http.StatusBadGateway,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeUpstreamError,
		"Catalog returned a non-numeric price",
		http.StatusBadGateway,
	)
)
