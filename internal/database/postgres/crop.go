package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// CropRepository implements the crop catalog repository for PostgreSQL
type CropRepository struct {
	db *pgxpool.Pool
}

// NewCropRepository creates a new CropRepository
func NewCropRepository(db *pgxpool.Pool) *CropRepository {
	return &CropRepository{db: db}
}

// UpsertCropDefinition inserts or updates a catalog entry. Returns true
// when a new row was inserted. xmax = 0 distinguishes a fresh insert from
// an update of an existing row.
func (r *CropRepository) UpsertCropDefinition(ctx context.Context, def domain.CropDefinition) (bool, error) {
	query := `
		INSERT INTO crop_definitions
			(internal_name, display_name, description, growth_duration_seconds, planting_cost, yield_resource, yield_amount, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (internal_name) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    description = EXCLUDED.description,
		    growth_duration_seconds = EXCLUDED.growth_duration_seconds,
		    planting_cost = EXCLUDED.planting_cost,
		    yield_resource = EXCLUDED.yield_resource,
		    yield_amount = EXCLUDED.yield_amount,
		    updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query,
		def.InternalName,
		def.DisplayName,
		def.Description,
		int64(def.GrowthDuration/time.Second),
		def.PlantingCost,
		def.YieldResource,
		def.YieldAmount,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCropDef, err)
	}
	return inserted, nil
}

// GetCropDefinitions returns all catalog entries
func (r *CropRepository) GetCropDefinitions(ctx context.Context) ([]domain.CropDefinition, error) {
	query := `
		SELECT internal_name, display_name, description, growth_duration_seconds, planting_cost, yield_resource, yield_amount
		FROM crop_definitions
		ORDER BY internal_name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCropDefs, err)
	}
	defer rows.Close()

	var defs []domain.CropDefinition
	for rows.Next() {
		var def domain.CropDefinition
		var description *string
		var seconds int64
		if err := rows.Scan(&def.InternalName, &def.DisplayName, &description, &seconds, &def.PlantingCost, &def.YieldResource, &def.YieldAmount); err != nil {
			return nil, fmt.Errorf("failed to scan crop definition: %w", err)
		}
		if description != nil {
			def.Description = *description
		}
		def.GrowthDuration = time.Duration(seconds) * time.Second
		defs = append(defs, def)
	}
	return defs, rows.Err()
}
