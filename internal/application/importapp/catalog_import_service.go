package importapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commerce/importer/internal/domain/catalog"
	"github.com/commerce/importer/internal/domain/commerce"
	"github.com/commerce/importer/internal/domain/shared"
)

const (
	// DefaultBatchSize bounds the number of records submitted per backend
	// call during product and inventory creation.
	DefaultBatchSize = 10

	// DefaultSalesChannelName is the channel every imported product is
	// assigned to. The main seed must have created it already.
	DefaultSalesChannelName = "Default Sales Channel"

	// DefaultStockedQuantity is used when a source record carries no usable
	// stock value. A literal zero also falls back, matching the falsy
	// semantics of the original seed.
	DefaultStockedQuantity = 100
)

// Prerequisite errors. Both abort the run before anything is created.
var (
	ErrNoSalesChannel = shared.NewDomainError("SALES_CHANNEL_NOT_FOUND",
		"Default Sales Channel not found. Run the main seed before importing the catalog.")
	ErrNoStockLocation = shared.NewDomainError("STOCK_LOCATION_NOT_FOUND",
		"No stock locations found. Run the main seed before importing the catalog.")
)

// SourceFetcher retrieves the raw catalog from the remote source.
type SourceFetcher interface {
	FetchProducts(ctx context.Context) ([]catalog.SourceProduct, error)
}

// ImportResult summarizes a completed import run.
type ImportResult struct {
	RunID             uuid.UUID     `json:"run_id"`
	ProductsFetched   int           `json:"products_fetched"`
	CategoriesCreated int           `json:"categories_created"`
	ProductsCreated   int           `json:"products_created"`
	InventoryLevels   int           `json:"inventory_levels"`
	CategoryNames     []string      `json:"category_names"`
	Duration          time.Duration `json:"duration"`
}

// CatalogImportService runs the one-shot catalog import: fetch, resolve
// prerequisites, create categories, create products in batches, provision
// inventory in batches. Stages run strictly in sequence; a failure at any
// point aborts the run and leaves earlier batches applied (no rollback, no
// retry).
type CatalogImportService struct {
	fetcher    SourceFetcher
	channels   commerce.SalesChannelService
	locations  commerce.StockLocationService
	categories commerce.CategoryService
	products   commerce.ProductService
	inventory  commerce.InventoryService
	logger     *zap.Logger
	batchSize  int
}

// NewCatalogImportService creates a CatalogImportService with the default
// batch size.
func NewCatalogImportService(
	fetcher SourceFetcher,
	channels commerce.SalesChannelService,
	locations commerce.StockLocationService,
	categories commerce.CategoryService,
	products commerce.ProductService,
	inventory commerce.InventoryService,
	logger *zap.Logger,
) *CatalogImportService {
	return &CatalogImportService{
		fetcher:    fetcher,
		channels:   channels,
		locations:  locations,
		categories: categories,
		products:   products,
		inventory:  inventory,
		logger:     logger,
		batchSize:  DefaultBatchSize,
	}
}

// Run executes the import pipeline once. Errors are logged where they occur
// and returned unmodified; the caller decides process exit behavior.
func (s *CatalogImportService) Run(ctx context.Context) (*ImportResult, error) {
	runID := uuid.New()
	log := s.logger.With(zap.String("run_id", runID.String()))
	start := time.Now()

	log.Info("Starting catalog import")

	source, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		log.Error("Failed to fetch catalog", zap.Error(err))
		return nil, err
	}
	log.Info("Fetched catalog", zap.Int("products", len(source)))

	channel, location, err := s.resolvePrerequisites(ctx, log)
	if err != nil {
		return nil, err
	}

	categoryIDs, names, err := s.createCategories(ctx, log, source)
	if err != nil {
		return nil, err
	}

	inputs := make([]commerce.ProductCreateInput, len(source))
	for i, p := range source {
		inputs[i] = TransformProduct(p, categoryIDs, channel.ID)
	}

	created, err := s.createProducts(ctx, log, inputs)
	if err != nil {
		return nil, err
	}

	levels, err := s.provisionInventory(ctx, log, created, source, location.ID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		RunID:             runID,
		ProductsFetched:   len(source),
		CategoriesCreated: len(categoryIDs),
		ProductsCreated:   len(created),
		InventoryLevels:   levels,
		CategoryNames:     names,
		Duration:          time.Since(start),
	}
	log.Info("Catalog import finished",
		zap.Int("products_created", result.ProductsCreated),
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("inventory_levels", result.InventoryLevels),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// resolvePrerequisites looks up the default sales channel and the first
// stock location. List order decides which element becomes the default.
func (s *CatalogImportService) resolvePrerequisites(ctx context.Context, log *zap.Logger) (*commerce.SalesChannel, *commerce.StockLocation, error) {
	channels, err := s.channels.ListByName(ctx, DefaultSalesChannelName)
	if err != nil {
		log.Error("Failed to list sales channels", zap.Error(err))
		return nil, nil, err
	}
	if len(channels) == 0 {
		log.Error("Default sales channel missing", zap.String("name", DefaultSalesChannelName))
		return nil, nil, ErrNoSalesChannel
	}

	locations, err := s.locations.List(ctx)
	if err != nil {
		log.Error("Failed to list stock locations", zap.Error(err))
		return nil, nil, err
	}
	if len(locations) == 0 {
		log.Error("No stock locations available")
		return nil, nil, ErrNoStockLocation
	}

	log.Info("Resolved import prerequisites",
		zap.String("sales_channel_id", channels[0].ID),
		zap.String("stock_location_id", locations[0].ID),
	)
	return &channels[0], &locations[0], nil
}

// createCategories creates the distinct source categories in a single call
// and returns the name→ID mapping plus the distinct names. Category counts
// are assumed small, so this stage is not batched.
func (s *CatalogImportService) createCategories(ctx context.Context, log *zap.Logger, source []catalog.SourceProduct) (map[string]string, []string, error) {
	names := catalog.CategoryNames(source)
	if len(names) == 0 {
		log.Info("No categories to create")
		return map[string]string{}, names, nil
	}

	inputs := make([]commerce.CategoryCreateInput, len(names))
	for i, name := range names {
		inputs[i] = commerce.CategoryCreateInput{
			Name:     name,
			Handle:   catalog.Handle(name),
			IsActive: true,
		}
	}

	created, err := s.categories.CreateCategories(ctx, inputs)
	if err != nil {
		log.Error("Failed to create categories", zap.Error(err))
		return nil, nil, err
	}

	ids := make(map[string]string, len(created))
	for _, c := range created {
		ids[c.Name] = c.ID
	}
	log.Info("Created categories", zap.Strings("names", names))
	return ids, names, nil
}

// createProducts submits the transformed products in fixed-size sequential
// batches and accumulates the created products in batch order, so the result
// indices line up 1:1 with the source record indices. Inventory provisioning
// depends on that alignment.
func (s *CatalogImportService) createProducts(ctx context.Context, log *zap.Logger, inputs []commerce.ProductCreateInput) ([]commerce.Product, error) {
	batches := catalog.Partition(inputs, s.batchSize)
	created := make([]commerce.Product, 0, len(inputs))

	for i, batch := range batches {
		log.Info("Creating product batch",
			zap.Int("batch", i+1),
			zap.Int("batches", len(batches)),
			zap.Int("size", len(batch)),
		)
		result, err := s.products.CreateProducts(ctx, batch)
		if err != nil {
			log.Error("Product batch failed", zap.Int("batch", i+1), zap.Error(err))
			return nil, err
		}
		created = append(created, result...)
	}
	return created, nil
}

// provisionInventory pairs each created product with the source record at
// the same position, builds one inventory level per variant that has a
// backing inventory item, and submits the levels in fixed-size sequential
// batches. Returns the number of levels created.
func (s *CatalogImportService) provisionInventory(ctx context.Context, log *zap.Logger, created []commerce.Product, source []catalog.SourceProduct, locationID string) (int, error) {
	levels := make([]commerce.InventoryLevelInput, 0, len(created))
	for i, product := range created {
		quantity := DefaultStockedQuantity
		if i < len(source) && source[i].Stock != 0 {
			quantity = source[i].Stock
		}
		for _, variant := range product.Variants {
			if len(variant.InventoryItems) == 0 {
				continue
			}
			levels = append(levels, commerce.InventoryLevelInput{
				InventoryItemID: variant.InventoryItems[0].ID,
				LocationID:      locationID,
				StockedQuantity: quantity,
			})
		}
	}

	batches := catalog.Partition(levels, s.batchSize)
	for i, batch := range batches {
		log.Info("Creating inventory batch",
			zap.Int("batch", i+1),
			zap.Int("batches", len(batches)),
			zap.Int("size", len(batch)),
		)
		if err := s.inventory.CreateLevels(ctx, batch); err != nil {
			log.Error("Inventory batch failed", zap.Int("batch", i+1), zap.Error(err))
			return 0, err
		}
	}
	return len(levels), nil
}
