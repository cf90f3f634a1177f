package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCroftBot    = "Starting CroftBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for the crop catalog
const (
	LogMsgLoadingCropCatalog = "Loading crop catalog from JSON config..."
	LogMsgCropCatalogLoaded  = "Crop catalog loaded"
	LogMsgSyncingCrops       = "Syncing crop definitions to database..."
	LogMsgCropsSynced        = "Crop definitions synced successfully"

	ErrMsgFailedLoadCropConfig = "failed to load crop config"
	ErrMsgInvalidCropConfig    = "invalid crop config"
	ErrMsgFailedBuildCatalog   = "failed to build crop catalog"
	ErrMsgFailedSyncCrops      = "failed to sync crop definitions to database"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
