package farm

import (
	"fmt"
	"time"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// plantPlot transitions a plot Empty -> Planted, deriving the crop's
// ready_at from the definition at planting time. The ledger debit for the
// planting cost is the caller's responsibility and must land in the same
// transaction.
func plantPlot(plot *domain.Plot, def domain.CropDefinition, now time.Time) error {
	if plot.State != domain.PlotStateEmpty {
		return fmt.Errorf("%w: plot %d is %s", domain.ErrPlotOccupied, plot.Index, plot.State)
	}

	plot.Crop = &domain.CropInstance{
		CropType:  def.InternalName,
		PlantedAt: now,
		ReadyAt:   now.Add(def.GrowthDuration),
	}
	plot.State = domain.PlotStatePlanted
	plot.LastEvaluatedAt = now
	return nil
}

// harvestPlot transitions a plot Ready -> Harvested -> Empty. Harvested is
// transient: the plot folds straight back to Empty and the destroyed crop
// instance is returned so the caller can credit its yield. A plot that is
// Planted or already Empty fails with ErrPlotNotReady; a second harvest
// never silently succeeds.
func harvestPlot(plot *domain.Plot, now time.Time) (domain.CropInstance, error) {
	if plot.State != domain.PlotStateReady || plot.Crop == nil {
		return domain.CropInstance{}, fmt.Errorf("%w: plot %d is %s", domain.ErrPlotNotReady, plot.Index, plot.State)
	}

	crop := *plot.Crop
	plot.Crop = nil
	plot.State = domain.PlotStateEmpty
	plot.LastEvaluatedAt = now
	return crop, nil
}
