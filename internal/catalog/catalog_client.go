package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -source=catalog_client.go -destination=../mock/catalog/catalog_client_mock.go -package=mock
type Client interface {
	Products(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, productID string) (Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

type httpClient struct {
	baseURL   string
	imageBase string
	client    *http.Client
}

// NewClient builds the catalog API client. One bounded timeout, no retries:
// a failed fetch surfaces once and leaves prior state untouched.
func NewClient(baseURL, imageBase string) Client {
	return &httpClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		imageBase: strings.TrimRight(imageBase, "/"),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) Products(ctx context.Context) ([]Product, error) {
	var env productListEnvelope
	if err := c.get(ctx, "/products", &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, ErrFetchFailed
	}
	return c.mapProducts(env.Data)
}

func (c *httpClient) Product(ctx context.Context, productID string) (Product, error) {
	path := "/products/single-product/" + url.PathEscape(productID)

	var env productEnvelope
	if err := c.getWithStatus(ctx, path, &env, func(status int) error {
		if status == http.StatusNotFound {
			return ErrProductNotFound
		}
		return nil
	}); err != nil {
		return Product{}, err
	}
	if !env.Success {
		return Product{}, ErrProductNotFound
	}
	return c.mapProduct(env.Data)
}

func (c *httpClient) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	var env productListEnvelope
	if err := c.get(ctx, "/products/category/"+url.PathEscape(categoryID), &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, ErrFetchFailed
	}
	return c.mapProducts(env.Data)
}

func (c *httpClient) Categories(ctx context.Context) ([]Category, error) {
	var env categoryListEnvelope
	if err := c.get(ctx, "/categories", &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, ErrFetchFailed
	}

	out := make([]Category, 0, len(env.Data))
	for _, w := range env.Data {
		out = append(out, Category{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

func (c *httpClient) get(ctx context.Context, path string, out any) error {
	return c.getWithStatus(ctx, path, out, nil)
}

func (c *httpClient) getWithStatus(ctx context.Context, path string, out any, onStatus func(int) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if onStatus != nil {
		if serr := onStatus(resp.StatusCode); serr != nil {
			return serr
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}
