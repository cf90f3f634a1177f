package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tillerlane/CroftBot_Go/internal/config"
	"github.com/tillerlane/CroftBot_Go/internal/crop"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
)

// LoadCatalog loads, validates, and builds the crop catalog from the JSON
// config. The catalog is immutable after this point; a bad config is a
// startup failure, not a runtime one.
func LoadCatalog(cfg *config.Config) (*crop.Catalog, error) {
	slog.Info(LogMsgLoadingCropCatalog, "path", cfg.CropConfigPath)

	loader := crop.NewLoader()

	cropConfig, err := loader.Load(cfg.CropConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCropConfig, err)
	}

	if err := loader.Validate(cropConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCropConfig, err)
	}

	catalog, err := loader.Catalog(cropConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildCatalog, err)
	}

	slog.Info(LogMsgCropCatalogLoaded, "crops", catalog.Len())
	return catalog, nil
}

// SyncCropDefinitions loads the crop config and upserts every definition
// into the database. Used by the setup tool so operational queries can
// join against crop metadata.
func SyncCropDefinitions(ctx context.Context, cfg *config.Config, repo repository.Crop) (*crop.SyncResult, error) {
	slog.Info(LogMsgSyncingCrops, "path", cfg.CropConfigPath)

	loader := crop.NewLoader()

	cropConfig, err := loader.Load(cfg.CropConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCropConfig, err)
	}

	if err := loader.Validate(cropConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCropConfig, err)
	}

	result, err := loader.SyncToDatabase(ctx, cropConfig, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCrops, err)
	}

	slog.Info(LogMsgCropsSynced,
		"inserted", result.CropsInserted,
		"updated", result.CropsUpdated)
	return result, nil
}
