package crop

// Error message constants for crop config loading
const (
	ErrMsgReadConfigFileFailed = "failed to read crop config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse crop config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoCropsDefined       = "no crops defined"
)

// CropsSchemaPath is the JSON schema the crop config is validated against
const CropsSchemaPath = "configs/schemas/crops.schema.json"
