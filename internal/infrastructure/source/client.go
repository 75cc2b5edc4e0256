package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/commerce/importer/internal/domain/catalog"
)

// maxResponseSize is the maximum allowed catalog response size (10MB).
const maxResponseSize = 10 * 1024 * 1024

// ErrFetchFailed indicates the catalog could not be retrieved or parsed.
var ErrFetchFailed = errors.New("source: catalog fetch failed")

// Config holds configuration for the catalog source client.
type Config struct {
	// Endpoint is the full URL of the catalog listing.
	Endpoint string
	// Timeout is the HTTP request timeout.
	Timeout time.Duration
}

// Validate validates the source client configuration.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("source: endpoint is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}

// Client retrieves the raw catalog from the remote source endpoint.
type Client struct {
	config     *Config
	httpClient *http.Client
	validate   *validator.Validate
}

// NewClient creates a catalog source client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		validate:   validator.New(),
	}, nil
}

// FetchProducts issues a single GET against the catalog endpoint and returns
// the records found under its "products" field. Records are validated once
// here: downstream stages rely on positive unique identifiers, non-empty
// titles and non-negative prices. There is no retry; any failure wraps
// ErrFetchFailed and aborts the run.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.SourceProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}

	var payload struct {
		Products []catalog.SourceProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrFetchFailed, err)
	}

	if err := c.validateProducts(payload.Products); err != nil {
		return nil, err
	}
	return payload.Products, nil
}

// validateProducts checks every record against the boundary rules and
// rejects duplicate identifiers within the fetch.
func (c *Client) validateProducts(products []catalog.SourceProduct) error {
	seen := make(map[int]struct{}, len(products))
	for i, p := range products {
		if err := c.validate.Struct(p); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrFetchFailed, i, err)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: record %d: duplicate identifier %d", ErrFetchFailed, i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
