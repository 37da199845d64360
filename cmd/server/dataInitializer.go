package main

import (
	"context"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/infrastructure/logger"
)

type DataInitializer struct {
	catalogService *catalog.Service
}

// Install seeds the catalog from the configured YAML file. Seeding is
// idempotent: a non-empty catalog is left alone.
func (d *DataInitializer) Install(ctx context.Context) error {
	cfg := config.GetGlobal()
	if cfg.CatalogSeedFile == "" {
		return nil
	}

	count, err := d.catalogService.SeedFromFile(ctx, cfg.CatalogSeedFile)
	if err != nil {
		return err
	}

	log := logger.GetLogger()
	if count > 0 {
		log.Info().Int("products", count).Str("file", cfg.CatalogSeedFile).Msg("seeded catalog")
	}
	return nil
}
