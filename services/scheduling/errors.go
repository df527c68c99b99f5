package scheduling

import (
	"errors"
	"fmt"
)

// Error codes for expected booking failures. Occupancy conflicts are
// ordinary results here, not panics: callers branch on the code.
const (
	CodeInvalidName        = "invalidName"
	CodeInvalidPhoneNumber = "invalidPhoneNumber"
	CodeSlotAlreadyBooked  = "slotAlreadyBooked"
	CodeInsufficientSlots  = "insufficientSlots"
	CodeNetworkError       = "networkError"
	CodeUnknownError       = "unknownError"
)

// BookingError is the tagged result type for every expected booking failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBookingError builds a tagged error with the given code.
func NewBookingError(code, format string, args ...any) *BookingError {
	return &BookingError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsBookingError unwraps err to a BookingError if one is in the chain.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// NetworkError wraps a store or transport failure so callers can treat it as
// retryable by the user.
func NetworkError(err error) *BookingError {
	return &BookingError{Code: CodeNetworkError, Message: err.Error()}
}
