package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound    = "account not found"
	ErrMsgAccountDeactivated = "account is deactivated"

	// Plot errors
	ErrMsgPlotOccupied     = "plot is occupied"
	ErrMsgPlotNotReady     = "plot is not ready"
	ErrMsgInvalidPlotIndex = "invalid plot index"

	// Crop errors
	ErrMsgUnknownCropType = "unknown crop type"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"

	// Concurrency errors
	ErrMsgConflict = "account was modified concurrently"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Platform errors
	ErrMsgInvalidPlatform = "invalid platform"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound    = errors.New(ErrMsgAccountNotFound)
	ErrAccountDeactivated = errors.New(ErrMsgAccountDeactivated)

	// Plot errors
	ErrPlotOccupied     = errors.New(ErrMsgPlotOccupied)
	ErrPlotNotReady     = errors.New(ErrMsgPlotNotReady)
	ErrInvalidPlotIndex = errors.New(ErrMsgInvalidPlotIndex)

	// Crop errors
	ErrUnknownCropType = errors.New(ErrMsgUnknownCropType)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Concurrency errors
	// Returned by SaveAccount when the stored version no longer matches the
	// loaded one; the farm service retries these before giving up.
	ErrConflict = errors.New(ErrMsgConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Platform errors
	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
)
