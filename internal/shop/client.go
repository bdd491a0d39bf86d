package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akbarovs/kross-storefront/internal/catalog"
)

// ErrNotFound is returned when a requested product does not exist upstream.
var ErrNotFound = errors.New("shop: product not found")

// Client wraps the upstream product/order API. Every call is one attempt:
// failures are returned to the caller, nothing is retried and no state is
// kept between calls, so the caller can simply try again.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client rooted at baseURL (e.g. http://localhost:8000/api).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Products fetches the full catalog. The upstream responds with either a
// paginated object {"results": [...]} or a bare array; both are accepted.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	return c.fetchList(ctx, "/products/")
}

// ProductsByCategory fetches products for one category (men/women/unisex).
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	return c.fetchList(ctx, "/products/by_category/?category="+category)
}

// NewArrivals fetches products flagged is_new.
func (c *Client) NewArrivals(ctx context.Context) ([]catalog.Product, error) {
	return c.fetchList(ctx, "/products/new_arrivals/")
}

// OnSale fetches products flagged is_sale.
func (c *Client) OnSale(ctx context.Context) ([]catalog.Product, error) {
	return c.fetchList(ctx, "/products/on_sale/")
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id int64) (catalog.Product, error) {
	var product catalog.Product

	body, err := c.get(ctx, fmt.Sprintf("/products/%d/", id))
	if err != nil {
		return product, err
	}
	if err := json.Unmarshal(body, &product); err != nil {
		return product, fmt.Errorf("shop: malformed product payload: %w", err)
	}
	normalize(&product)
	return product, nil
}

// CreateOrder submits an order. The upstream confirmation shape is not
// constrained, so it is returned raw for the caller to pass through.
func (c *Client) CreateOrder(ctx context.Context, order Order) (json.RawMessage, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("shop: encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("shop: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shop: submit order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("shop: read order response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("shop: order rejected with status %d", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

func (c *Client) fetchList(ctx context.Context, path string) ([]catalog.Product, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	products, err := decodeProductList(body)
	if err != nil {
		return nil, err
	}
	for i := range products {
		normalize(&products[i])
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("shop: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shop: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shop: %s returned status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("shop: read response: %w", err)
	}
	return body, nil
}

// decodeProductList accepts both the paginated wrapper and a bare array.
func decodeProductList(body []byte) ([]catalog.Product, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []catalog.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, fmt.Errorf("shop: malformed product list: %w", err)
		}
		return products, nil
	}

	var page struct {
		Results []catalog.Product `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("shop: malformed product list: %w", err)
	}
	return page.Results, nil
}

// normalize fills safe defaults for optional upstream fields so view code
// never has to nil-check galleries or size lists.
func normalize(p *catalog.Product) {
	if p.Images == nil {
		p.Images = []catalog.Image{}
	}
	if p.Sizes == nil {
		p.Sizes = []catalog.Size{}
	}
}
