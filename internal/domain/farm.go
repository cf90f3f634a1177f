package domain

import (
	"fmt"
	"time"
)

// PlotState represents the lifecycle state of a plot.
// "harvested" is transient: a harvest folds straight back to "empty" within
// the same operation, so it is never persisted.
type PlotState string

const (
	PlotStateEmpty   PlotState = "empty"
	PlotStatePlanted PlotState = "planted"
	PlotStateReady   PlotState = "ready"
)

// Resource type identifiers. Currency is modelled as a resource like any
// other so the ledger has a single code path.
const (
	ResourceMoney = "money"
)

// CropInstance is the live, planted occurrence of a crop on a specific plot.
// Immutable once created; destroyed on harvest.
type CropInstance struct {
	CropType  string    `json:"crop_type"`
	PlantedAt time.Time `json:"planted_at"`
	ReadyAt   time.Time `json:"ready_at"`
}

// Plot is a single land slot an account can plant into.
// Invariant: State == empty  <=> Crop == nil
//	          State != empty  <=> Crop != nil
type Plot struct {
	Index           int           `json:"index"`
	State           PlotState     `json:"state"`
	Crop            *CropInstance `json:"crop,omitempty"`
	LastEvaluatedAt time.Time     `json:"last_evaluated_at"`
}

// ResourceBalance maps resource type to a non-negative amount.
type ResourceBalance map[string]int64

// Amount returns the balance for a resource type, zero when absent.
func (b ResourceBalance) Amount(resourceType string) int64 {
	return b[resourceType]
}

// Clone returns a deep copy so aggregates can be mutated without aliasing.
func (b ResourceBalance) Clone() ResourceBalance {
	c := make(ResourceBalance, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}

// Account is the aggregate root: platform identity, plots and balances.
// Version is the optimistic-concurrency token checked by SaveAccount.
type Account struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	DiscordID string          `json:"discord_id,omitempty"`
	TwitchID  string          `json:"twitch_id,omitempty"`
	YoutubeID string          `json:"youtube_id,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	Version   int64           `json:"version"`
	Plots     []Plot          `json:"plots"`
	Balances  ResourceBalance `json:"balances"`
}

// Plot returns the plot at index or ErrInvalidPlotIndex.
func (a *Account) Plot(index int) (*Plot, error) {
	if index < 0 || index >= len(a.Plots) {
		return nil, fmt.Errorf("%w: %d (account has %d plots)", ErrInvalidPlotIndex, index, len(a.Plots))
	}
	return &a.Plots[index], nil
}

// NewPlots builds the empty plot set for a fresh account. Capacity comes
// from configuration, not a constant.
func NewPlots(capacity int, now time.Time) []Plot {
	plots := make([]Plot, capacity)
	for i := range plots {
		plots[i] = Plot{
			Index:           i,
			State:           PlotStateEmpty,
			LastEvaluatedAt: now,
		}
	}
	return plots
}

// Ledger entry causes. Every balance mutation records one of these.
const (
	LedgerCausePlantCost     = "plant_cost"
	LedgerCauseHarvestYield  = "harvest_yield"
	LedgerCauseStartingGrant = "starting_grant"
	LedgerCauseAdminGrant    = "admin_grant"
)

// LedgerEntry is one append-only record of a balance mutation and its cause.
type LedgerEntry struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	ResourceType string    `json:"resource_type"`
	Delta        int64     `json:"delta"`
	Cause        string    `json:"cause"`
	BalanceAfter int64     `json:"balance_after"`
	PlotIndex    *int      `json:"plot_index,omitempty"`
	CropType     string    `json:"crop_type,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}
