package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Vehicle catalog errors
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransitionConflict = errors.New("booking was modified concurrently")
	ErrInvalidInterval    = errors.New("invalid rental interval")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrEventPublishFailed      = errors.New("event publish failed")
)
