package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Parameter validation error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"

	// Admin error messages
	ErrMsgAmountMustBePositive = "amount must be positive"
	ErrMsgAmountExceedsMax     = "amount exceeds maximum (1000000)"
)

// MaxGrantAmount caps a single admin grant.
const MaxGrantAmount = 1000000
