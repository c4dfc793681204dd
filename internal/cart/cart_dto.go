package cart

import "github.com/shopspring/decimal"

// LineItem is one product and its requested quantity. UnitPrice was parsed
// at the catalog boundary; it is never re-parsed here.
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageURL  string          `json:"imagePath"`
	Quantity  int32           `json:"quantity"`
}

// Direction for quantity adjustment.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// ==================== REQUEST STRUCTS ====================

type AdjustQtyRequest struct {
	Direction string `json:"direction" binding:"required,oneof=increase decrease"`
}

// ==================== RESPONSE STRUCTS ====================

type AddItemResponse struct {
	Added   bool   `json:"added"`
	Message string `json:"message"`
}

type CartItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	ImageURL  string `json:"imagePath"`
	Quantity  int32  `json:"quantity"`
	Total     string `json:"total"`
}

type CartDetailResponse struct {
	Items      []CartItemResponse `json:"items"`
	ItemCount  int                `json:"itemCount"`
	TotalPrice string             `json:"totalPrice"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}
