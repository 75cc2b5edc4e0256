package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{Endpoint: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestFetchProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{
					"id": 1,
					"title": "Essence Mascara Lash Princess",
					"category": "beauty",
					"price": 9.99,
					"stock": 99,
					"sku": "BEA-ESS-001",
					"thumbnail": "https://cdn.example.com/thumb.png",
					"images": ["https://cdn.example.com/1.png"],
					"weight": 4,
					"dimensions": {"width": 15.14, "height": 13.08, "depth": 22.99}
				},
				{"id": 2, "title": "Red Lipstick", "category": "beauty", "price": 12.99}
			],
			"total": 2,
			"skip": 0,
			"limit": 100
		}`))
	})

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Essence Mascara Lash Princess", first.Title)
	assert.Equal(t, 9.99, first.Price)
	assert.Equal(t, 99, first.Stock)
	assert.Equal(t, "BEA-ESS-001", first.SKU)
	assert.Equal(t, 22.99, first.Dimensions.Depth)

	second := products[1]
	assert.Equal(t, 2, second.ID)
	assert.Zero(t, second.Stock)
	assert.Empty(t, second.SKU)
}

func TestFetchProductsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetchProductsInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [`))
	})

	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchProductsConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client, err := NewClient(&Config{Endpoint: endpoint, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchProductsRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing identifier", `{"products": [{"title": "x", "price": 1}]}`},
		{"missing title", `{"products": [{"id": 1, "price": 1}]}`},
		{"negative price", `{"products": [{"id": 1, "title": "x", "price": -0.01}]}`},
		{"negative stock", `{"products": [{"id": 1, "title": "x", "price": 1, "stock": -5}]}`},
		{"duplicate identifiers", `{"products": [
			{"id": 7, "title": "a", "price": 1},
			{"id": 7, "title": "b", "price": 2}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.FetchProducts(context.Background())
			require.ErrorIs(t, err, ErrFetchFailed)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)

	cfg := &Config{Endpoint: "https://dummyjson.com/products?limit=100"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}
