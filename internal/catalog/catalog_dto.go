package catalog

import "github.com/shopspring/decimal"

// Product is the parsed, typed form the rest of the service works with.
// UnitPrice is already decimal here; nothing downstream re-parses price
// strings.
type Product struct {
	ID          string
	Name        string
	UnitPrice   decimal.Decimal
	OldPrice    *decimal.Decimal
	ImageURL    string
	SecondImage string
	Tag         string
	CategoryID  string
}

type Category struct {
	ID   string
	Name string
}

// Wire shapes of the catalog API. Prices travel as display strings that may
// carry a currency glyph.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type productListEnvelope struct {
	envelope
	Data []productWire `json:"data"`
}

type productEnvelope struct {
	envelope
	Data productWire `json:"data"`
}

type categoryListEnvelope struct {
	envelope
	Data []categoryWire `json:"data"`
}

type productWire struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	OldPrice    string `json:"oldprice"`
	Image       string `json:"image"`
	SecondImage string `json:"secondImage"`
	Tag         string `json:"tag"`
	Category    string `json:"category"`
}

type categoryWire struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
