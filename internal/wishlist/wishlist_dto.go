package wishlist

import "github.com/shopspring/decimal"

// Item is a saved product. Unlike a cart line it carries no quantity; a
// product is either on the list or it is not.
type Item struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageURL  string          `json:"imagePath"`
}

// ==================== RESPONSE STRUCTS ====================

type ItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	ImageURL  string `json:"imagePath"`
}

type ListResponse struct {
	Items     []ItemResponse `json:"items"`
	ItemCount int            `json:"itemCount"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
