package wishlist

import (
	"net/http"

	"go-store-api/internal/pkg/apperror"
)

var (
	ErrItemAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Item is already in the wishlist",
		http.StatusConflict,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item is not in the wishlist",
		http.StatusNotFound,
	)
)
