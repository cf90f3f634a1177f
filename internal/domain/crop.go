package domain

import "time"

// CropDefinition is an immutable catalog entry describing a plantable crop.
// Shared by reference across all planted instances.
type CropDefinition struct {
	InternalName   string        `json:"internal_name"`
	DisplayName    string        `json:"display_name"`
	Description    string        `json:"description,omitempty"`
	GrowthDuration time.Duration `json:"growth_duration"`
	PlantingCost   int64         `json:"planting_cost"`
	YieldResource  string        `json:"yield_resource"`
	YieldAmount    int64         `json:"yield_amount"`
}
