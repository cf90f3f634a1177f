package domain

import "time"

// Supported chat platforms
const (
	PlatformDiscord = "discord"
	PlatformTwitch  = "twitch"
	PlatformYoutube = "youtube"
)

// ActionKind identifies a normalized inbound user action.
type ActionKind string

const (
	ActionPlant   ActionKind = "plant"
	ActionHarvest ActionKind = "harvest"
	ActionQuery   ActionKind = "query"
)

// UserAction is the normalized action a transport adapter delivers to the
// engine. CropType and PlotIndex are only meaningful for the kinds that
// use them.
type UserAction struct {
	Platform   string     `json:"platform"`
	PlatformID string     `json:"platform_id"`
	Username   string     `json:"username"`
	Kind       ActionKind `json:"kind"`
	CropType   string     `json:"crop_type,omitempty"`
	PlotIndex  int        `json:"plot_index"`
}

// ActionResultKind distinguishes success from failure results.
type ActionResultKind string

const (
	ResultSuccess ActionResultKind = "success"
	ResultFailure ActionResultKind = "failure"
)

// ActionResult is what the engine hands back to the transport layer to
// render. Data carries the operation-specific response payload.
type ActionResult struct {
	Kind    ActionResultKind `json:"kind"`
	Message string           `json:"message"`
	Data    interface{}      `json:"data,omitempty"`
}

// PlantResponse is the result payload of a successful plant operation.
type PlantResponse struct {
	PlotIndex int       `json:"plot_index"`
	CropType  string    `json:"crop_type"`
	PlantedAt time.Time `json:"planted_at"`
	ReadyAt   time.Time `json:"ready_at"`
	Balance   int64     `json:"balance"`
	Message   string    `json:"message"`
}

// HarvestResponse is the result payload of a successful harvest operation.
type HarvestResponse struct {
	PlotIndex       int              `json:"plot_index"`
	CropType        string           `json:"crop_type"`
	ResourcesGained map[string]int64 `json:"resources_gained"`
	Balances        ResourceBalance  `json:"balances"`
	Message         string           `json:"message"`
}

// PlotStatus is the per-plot view returned by the status query, with a
// remaining-time hint for the transport layer to render.
type PlotStatus struct {
	Index            int        `json:"index"`
	State            PlotState  `json:"state"`
	CropType         string     `json:"crop_type,omitempty"`
	PlantedAt        *time.Time `json:"planted_at,omitempty"`
	ReadyAt          *time.Time `json:"ready_at,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

// FarmStatusResponse is the result payload of the status query.
type FarmStatusResponse struct {
	AccountID string          `json:"account_id"`
	Username  string          `json:"username"`
	Balances  ResourceBalance `json:"balances"`
	Plots     []PlotStatus    `json:"plots"`
}
