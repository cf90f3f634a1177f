package handler

import (
	"net/http"

	"github.com/tillerlane/CroftBot_Go/internal/crop"
)

// CropListItem is the public view of a crop definition. Growth time is
// exposed in whole seconds so transport clients never parse durations.
type CropListItem struct {
	InternalName  string `json:"internal_name"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description,omitempty"`
	GrowthSeconds int64  `json:"growth_seconds"`
	PlantingCost  int64  `json:"planting_cost"`
	YieldResource string `json:"yield_resource"`
	YieldAmount   int64  `json:"yield_amount"`
}

// CropListResponse wraps the crop catalog listing
type CropListResponse struct {
	Crops []CropListItem `json:"crops"`
}

// HandleGetCrops returns the plantable crop catalog
func HandleGetCrops(catalog *crop.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := catalog.All()
		items := make([]CropListItem, 0, len(defs))
		for _, def := range defs {
			items = append(items, CropListItem{
				InternalName:  def.InternalName,
				DisplayName:   def.DisplayName,
				Description:   def.Description,
				GrowthSeconds: int64(def.GrowthDuration.Seconds()),
				PlantingCost:  def.PlantingCost,
				YieldResource: def.YieldResource,
				YieldAmount:   def.YieldAmount,
			})
		}

		respondJSON(w, http.StatusOK, CropListResponse{Crops: items})
	}
}
