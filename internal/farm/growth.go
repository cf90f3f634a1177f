package farm

import (
	"time"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// EvaluateGrowth is the progression evaluator: a pure function of the crop
// instance and the current clock. The boundary is inclusive: a crop whose
// ready_at equals now is Ready. No background process ticks growth forward;
// readiness is always recomputed from the stored timestamps.
func EvaluateGrowth(crop domain.CropInstance, now time.Time) domain.PlotState {
	if !now.Before(crop.ReadyAt) {
		return domain.PlotStateReady
	}
	return domain.PlotStatePlanted
}

// applyGrowth corrects a plot's stored state from its crop timestamps.
// Returns true when the stored state changed (Planted -> Ready). The
// correction is monotonic: a Ready plot is never moved back to Planted, so
// evaluating at a later time can never regress an earlier result.
func applyGrowth(plot *domain.Plot, now time.Time) bool {
	plot.LastEvaluatedAt = now

	if plot.State != domain.PlotStatePlanted || plot.Crop == nil {
		return false
	}
	if EvaluateGrowth(*plot.Crop, now) != domain.PlotStateReady {
		return false
	}

	plot.State = domain.PlotStateReady
	return true
}

// applyGrowthAll runs the correct-on-read rule across the account's plots.
// Returns true when any plot changed, signalling that the correction must
// be persisted in the same transaction as the read.
func applyGrowthAll(account *domain.Account, now time.Time) bool {
	changed := false
	for i := range account.Plots {
		if applyGrowth(&account.Plots[i], now) {
			changed = true
		}
	}
	return changed
}
