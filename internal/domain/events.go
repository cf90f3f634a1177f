package domain

// Event type identifiers for farm operations. Consumed by the metrics
// subscriber; payloads are the typed structs below.
const (
	EventTypeCropPlanted   = "crop.planted"
	EventTypeCropHarvested = "crop.harvested"
)

// EventSchemaVersion is the current farm event schema version.
const EventSchemaVersion = "1.0"

// CropPlantedPayloadV1 is the typed payload for crop.planted events.
type CropPlantedPayloadV1 struct {
	AccountID string `json:"account_id"`
	CropType  string `json:"crop_type"`
	PlotIndex int    `json:"plot_index"`
	Cost      int64  `json:"cost"`
}

// CropHarvestedPayloadV1 is the typed payload for crop.harvested events.
type CropHarvestedPayloadV1 struct {
	AccountID string `json:"account_id"`
	CropType  string `json:"crop_type"`
	PlotIndex int    `json:"plot_index"`
	Resource  string `json:"resource"`
	Yield     int64  `json:"yield"`
}
