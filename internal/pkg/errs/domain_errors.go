package errs

import "errors"

// Sentinel errors shared across the usecase layers. Each maps to a stable
// message category at the HTTP boundary.
var (
	// Lookup failures
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")

	// Pricing
	ErrInvalidRange  = errors.New("invalid stay range")
	ErrTariffMissing = errors.New("no tariff for requested night")

	// Booking
	ErrRoomUnavailable   = errors.New("room unavailable for requested range")
	ErrServiceNotOffered = errors.New("service not offered by hotel")

	// Guests
	ErrDuplicateGuest   = errors.New("guest with this document already exists")
	ErrValidationFailed = errors.New("validation failed")

	// Lifecycle
	ErrInvalidState = errors.New("invalid reservation state for transition")

	// Loyalty
	ErrInvalidAmount = errors.New("invalid amount")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
