package config

// Default configuration values
const (
	DefaultPort            = 8080
	DefaultPlotCapacity    = 3
	DefaultStartingBalance = 100
	DefaultCropConfigPath  = "configs/crops.json"
	DefaultLogDir          = "logs"
)

// Config file paths
const (
	ConfigPathCropsSchema = "configs/schemas/crops.schema.json"
)
