package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/commerce/importer/internal/application/importapp"
	"github.com/commerce/importer/internal/infrastructure/commerce"
	"github.com/commerce/importer/internal/infrastructure/config"
	"github.com/commerce/importer/internal/infrastructure/logger"
	"github.com/commerce/importer/internal/infrastructure/source"
)

func main() {
	// Parse flags
	var (
		catalogURL string
		backendURL string
		logLevel   string
	)

	flag.StringVar(&catalogURL, "catalog-url", "", "Catalog source endpoint (overrides config)")
	flag.StringVar(&backendURL, "backend-url", "", "Commerce backend admin API base URL (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if catalogURL != "" {
		cfg.Catalog.Endpoint = catalogURL
	}
	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(cfg, log); err != nil {
		log.Fatal("Catalog import failed", zap.Error(err))
	}
}

// run wires the collaborators and executes the import pipeline once.
func run(cfg *config.Config, log *zap.Logger) error {
	fetcher, err := source.NewClient(&source.Config{
		Endpoint: cfg.Catalog.Endpoint,
		Timeout:  cfg.Catalog.Timeout,
	})
	if err != nil {
		return err
	}

	backend, err := commerce.NewAdminClient(&commerce.Config{
		BaseURL:  cfg.Backend.BaseURL,
		APIToken: cfg.Backend.APIToken,
		Timeout:  cfg.Backend.Timeout,
	})
	if err != nil {
		return err
	}

	service := importapp.NewCatalogImportService(
		fetcher,
		backend,
		backend,
		backend,
		backend,
		backend,
		log,
	)

	result, err := service.Run(context.Background())
	if err != nil {
		return err
	}

	log.Info("Import summary",
		zap.Int("products_fetched", result.ProductsFetched),
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("products_created", result.ProductsCreated),
		zap.Int("inventory_levels", result.InventoryLevels),
		zap.Strings("categories", result.CategoryNames),
	)
	return nil
}
