package crop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
	"github.com/tillerlane/CroftBot_Go/internal/validation"
)

// Sentinel errors for the crop loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for crops
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Crops []Def `json:"crops"`
}

// Def represents a single crop definition in the JSON
type Def struct {
	InternalName          string `json:"internal_name"`
	DisplayName           string `json:"display_name"`
	Description           string `json:"description,omitempty"`
	GrowthDurationSeconds int64  `json:"growth_duration_seconds"`
	PlantingCost          int64  `json:"planting_cost"`
	YieldResource         string `json:"yield_resource"`
	YieldAmount           int64  `json:"yield_amount"`
}

// ToDomain converts a config def to the immutable catalog entry.
func (d Def) ToDomain() domain.CropDefinition {
	return domain.CropDefinition{
		InternalName:   d.InternalName,
		DisplayName:    d.DisplayName,
		Description:    d.Description,
		GrowthDuration: time.Duration(d.GrowthDurationSeconds) * time.Second,
		PlantingCost:   d.PlantingCost,
		YieldResource:  d.YieldResource,
		YieldAmount:    d.YieldAmount,
	}
}

// Loader handles loading and validating crop configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Catalog(config *Config) (*Catalog, error)
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Crop) (*SyncResult, error)
}

// SyncResult contains the result of syncing crops to the database
type SyncResult struct {
	CropsInserted int
	CropsUpdated  int
}

type cropLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &cropLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a crops JSON file
func (l *cropLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, CropsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the crop configuration for errors
func (l *cropLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Crops) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoCropsDefined)
	}

	internalNames := make(map[string]bool, len(config.Crops))

	for i := range config.Crops {
		def := &config.Crops[i]

		if def.InternalName == "" {
			return fmt.Errorf("%w: crop %d has empty internal_name", ErrInvalidConfig, i)
		}
		if internalNames[def.InternalName] {
			return fmt.Errorf("%w: %s", ErrDuplicateInternalName, def.InternalName)
		}
		internalNames[def.InternalName] = true

		if def.DisplayName == "" {
			return fmt.Errorf("%w: crop %q has empty display_name", ErrInvalidConfig, def.InternalName)
		}
		if def.GrowthDurationSeconds <= 0 {
			return fmt.Errorf("%w: crop %q has non-positive growth duration", ErrInvalidConfig, def.InternalName)
		}
		if def.PlantingCost < 0 {
			return fmt.Errorf("%w: crop %q has negative planting cost", ErrInvalidConfig, def.InternalName)
		}
		if def.YieldResource == "" {
			return fmt.Errorf("%w: crop %q has empty yield_resource", ErrInvalidConfig, def.InternalName)
		}
		if def.YieldAmount <= 0 {
			return fmt.Errorf("%w: crop %q has non-positive yield", ErrInvalidConfig, def.InternalName)
		}
	}

	return nil
}

// Catalog builds the immutable in-memory catalog from a validated config.
func (l *cropLoader) Catalog(config *Config) (*Catalog, error) {
	defs := make([]domain.CropDefinition, 0, len(config.Crops))
	for _, def := range config.Crops {
		defs = append(defs, def.ToDomain())
	}
	return NewCatalog(defs)
}

// SyncToDatabase upserts the catalog entries so other tooling can join
// against crop definitions. The in-memory catalog remains the authority at
// runtime; the table mirrors the config.
func (l *cropLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Crop) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	result := &SyncResult{}
	for _, def := range config.Crops {
		inserted, err := repo.UpsertCropDefinition(ctx, def.ToDomain())
		if err != nil {
			return nil, fmt.Errorf("failed to sync crop %q: %w", def.InternalName, err)
		}
		if inserted {
			result.CropsInserted++
		} else {
			result.CropsUpdated++
		}
	}

	log.Info("Crop catalog synced", "inserted", result.CropsInserted, "updated", result.CropsUpdated)
	return result, nil
}
