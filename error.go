package hdrmap

import "github.com/ghettovoice/hdrmap/internal/errorutil"

// Error represents a header map error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	ErrInvalidArgument       = errorutil.ErrInvalidArgument
	ErrInvalidName     Error = "invalid header name"
	ErrInvalidValue    Error = "invalid header value"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
