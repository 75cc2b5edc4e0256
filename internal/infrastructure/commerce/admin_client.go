package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/commerce/importer/internal/domain/commerce"
)

// maxResponseSize is the maximum allowed admin API response size (10MB).
const maxResponseSize = 10 * 1024 * 1024

// ErrRequestFailed indicates a backend admin API call failed. Creation
// endpoints fail as a unit: a failed batch creates nothing, but batches
// already submitted stay applied.
var ErrRequestFailed = errors.New("commerce: admin request failed")

// Config holds configuration for the commerce backend admin client.
type Config struct {
	// BaseURL is the backend's admin API base, without a trailing slash.
	BaseURL string
	// APIToken is the bearer token for admin authentication.
	APIToken string
	// Timeout is the HTTP request timeout.
	Timeout time.Duration
}

// Validate validates the admin client configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("commerce: base URL is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}

// AdminClient talks to the commerce backend's admin API. It implements the
// capability interfaces the import pipeline consumes: sales channel and
// stock location lookups plus batched category, product and inventory-level
// creation.
type AdminClient struct {
	config     *Config
	httpClient *http.Client
}

// Interface checks.
var (
	_ commerce.SalesChannelService  = (*AdminClient)(nil)
	_ commerce.StockLocationService = (*AdminClient)(nil)
	_ commerce.CategoryService      = (*AdminClient)(nil)
	_ commerce.ProductService       = (*AdminClient)(nil)
	_ commerce.InventoryService     = (*AdminClient)(nil)
)

// NewAdminClient creates an admin API client with the given configuration.
func NewAdminClient(config *Config) (*AdminClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &AdminClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

// ListByName returns the sales channels whose name matches exactly.
func (c *AdminClient) ListByName(ctx context.Context, name string) ([]commerce.SalesChannel, error) {
	path := "/admin/sales-channels?name=" + url.QueryEscape(name)
	var payload struct {
		SalesChannels []commerce.SalesChannel `json:"sales_channels"`
	}
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.SalesChannels, nil
}

// List returns all stock locations.
func (c *AdminClient) List(ctx context.Context) ([]commerce.StockLocation, error) {
	var payload struct {
		StockLocations []commerce.StockLocation `json:"stock_locations"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/admin/stock-locations", nil, &payload); err != nil {
		return nil, err
	}
	return payload.StockLocations, nil
}

// CreateCategories creates product categories in one call.
func (c *AdminClient) CreateCategories(ctx context.Context, inputs []commerce.CategoryCreateInput) ([]commerce.Category, error) {
	body := map[string]any{"product_categories": inputs}
	var payload struct {
		ProductCategories []commerce.Category `json:"product_categories"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/admin/product-categories/batch", body, &payload); err != nil {
		return nil, err
	}
	return payload.ProductCategories, nil
}

// CreateProducts creates products in one call, returning them in input order.
func (c *AdminClient) CreateProducts(ctx context.Context, inputs []commerce.ProductCreateInput) ([]commerce.Product, error) {
	body := map[string]any{"products": inputs}
	var payload struct {
		Products []commerce.Product `json:"products"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/admin/products/batch", body, &payload); err != nil {
		return nil, err
	}
	return payload.Products, nil
}

// CreateLevels creates inventory levels in one call.
func (c *AdminClient) CreateLevels(ctx context.Context, inputs []commerce.InventoryLevelInput) error {
	body := map[string]any{"inventory_levels": inputs}
	return c.doRequest(ctx, http.MethodPost, "/admin/inventory-levels/batch", body, nil)
}

// doRequest performs one admin API call and decodes the response into out
// when out is non-nil.
func (c *AdminClient) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %s %s: HTTP %d", ErrRequestFailed, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrRequestFailed, err)
		}
	}
	return nil
}
