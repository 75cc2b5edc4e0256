package commerce

import "context"

// SalesChannelService reads sales channels from the backend.
type SalesChannelService interface {
	// ListByName returns the sales channels whose name matches exactly.
	ListByName(ctx context.Context, name string) ([]SalesChannel, error)
}

// StockLocationService reads stock locations from the backend.
type StockLocationService interface {
	// List returns all stock locations.
	List(ctx context.Context) ([]StockLocation, error)
}

// CategoryService creates product categories in the backend.
type CategoryService interface {
	// CreateCategories creates all given categories in one call and returns
	// the created entities. The call fails as a unit.
	CreateCategories(ctx context.Context, inputs []CategoryCreateInput) ([]Category, error)
}

// ProductService creates products in the backend.
type ProductService interface {
	// CreateProducts creates all given products in one call and returns the
	// created entities in input order. The call fails as a unit.
	CreateProducts(ctx context.Context, inputs []ProductCreateInput) ([]Product, error)
}

// InventoryService creates inventory levels in the backend.
type InventoryService interface {
	// CreateLevels creates all given inventory levels in one call. The call
	// fails as a unit.
	CreateLevels(ctx context.Context, inputs []InventoryLevelInput) error
}
