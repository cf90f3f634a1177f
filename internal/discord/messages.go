package discord

// Friendly message constants for Discord responses
const (
	// Farming
	MsgPlotOccupied = "🌱 **Plot Occupied**\nThat plot already has a crop growing. Harvest it first or pick another plot."
	MsgPlotNotReady = "⏳ **Not Ready Yet**\nThat crop is still growing. Check `/farm` for the time remaining."
	MsgUnknownCrop  = "❓ **Unknown Crop**\nMaybe check the spelling?"
	MsgInvalidPlot  = "🗺️ **Invalid Plot**\nYou don't have a plot with that number."

	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Money!**\nYou can't afford to plant that crop."

	// Account
	MsgAccountNotFound = "👤 **Account Not Found**\nTry planting something first."

	MsgGenericError = "❌ Something went wrong."
)
