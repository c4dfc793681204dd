package catalog

import (
	"fmt"
	"strings"

	"go-store-api/internal/pkg/money"
)

func (c *httpClient) mapProducts(wires []productWire) ([]Product, error) {
	out := make([]Product, 0, len(wires))
	for _, w := range wires {
		p, err := c.mapProduct(w)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// mapProduct parses the wire product once, at the boundary. A price the
// catalog can't express as a number fails the whole fetch rather than
// contributing a silent zero downstream.
func (c *httpClient) mapProduct(w productWire) (Product, error) {
	price, err := money.ParsePrice(w.Price)
	if err != nil {
		return Product{}, fmt.Errorf("%w: product %s: %v", ErrInvalidPrice, w.ID, err)
	}

	p := Product{
		ID:          w.ID,
		Name:        w.Name,
		UnitPrice:   price,
		ImageURL:    c.resolveImage(w.Image),
		SecondImage: c.resolveImage(w.SecondImage),
		Tag:         w.Tag,
		CategoryID:  w.Category,
	}

	if strings.TrimSpace(w.OldPrice) != "" {
		old, err := money.ParsePrice(w.OldPrice)
		if err == nil {
			p.OldPrice = &old
		}
	}

	return p, nil
}

// resolveImage prefixes relative image paths with the image host.
func (c *httpClient) resolveImage(path string) string {
	if path == "" {
		return "/images/placeholder.jpg"
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	if c.imageBase == "" {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.imageBase + path
}
