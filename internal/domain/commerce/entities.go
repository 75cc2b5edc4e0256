package commerce

// SalesChannel is a storefront/distribution channel a product is sold
// through. The importer only reads channels; provisioning them belongs to
// the backend's own seed process.
type SalesChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StockLocation is a physical or logical inventory location in the backend.
type StockLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryCreateInput is the payload for creating one product category.
type CategoryCreateInput struct {
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	IsActive bool   `json:"is_active"`
}

// Category is a created product category as returned by the backend.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// ImageInput references a product image by URL.
type ImageInput struct {
	URL string `json:"url"`
}

// OptionInput defines a product option group and its allowed values.
type OptionInput struct {
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

// PriceInput is one money amount in a specific currency, in minor units.
type PriceInput struct {
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// VariantCreateInput is the single purchasable unit of a product to create.
type VariantCreateInput struct {
	Title           string            `json:"title"`
	SKU             string            `json:"sku"`
	Options         map[string]string `json:"options"`
	Prices          []PriceInput      `json:"prices"`
	ManageInventory bool              `json:"manage_inventory"`
}

// ProductCreateInput is one product in the target commerce schema. The
// importer always produces exactly one variant, at most one category
// reference and exactly one sales-channel reference per product.
type ProductCreateInput struct {
	Title           string               `json:"title"`
	Handle          string               `json:"handle"`
	Description     string               `json:"description"`
	Status          string               `json:"status"`
	Images          []ImageInput         `json:"images"`
	Options         []OptionInput        `json:"options"`
	Variants        []VariantCreateInput `json:"variants"`
	CategoryIDs     []string             `json:"category_ids"`
	SalesChannelIDs []string             `json:"sales_channel_ids"`
	Weight          float64              `json:"weight"`
	Length          float64              `json:"length"`
	Width           float64              `json:"width"`
	Height          float64              `json:"height"`
}

// InventoryItem is the trackable unit the backend attaches to a variant.
type InventoryItem struct {
	ID string `json:"id"`
}

// Variant is a created product variant, carrying the inventory items the
// backend provisioned for it.
type Variant struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	InventoryItems []InventoryItem `json:"inventory_items"`
}

// Product is a created product as returned by the backend.
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Variants []Variant `json:"variants"`
}

// InventoryLevelInput assigns a stocked quantity of one inventory item to
// one stock location.
type InventoryLevelInput struct {
	InventoryItemID string `json:"inventory_item_id"`
	LocationID      string `json:"location_id"`
	StockedQuantity int    `json:"stocked_quantity"`
}
