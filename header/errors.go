package header

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/hdrmap/internal/errorutil"
	"github.com/ghettovoice/hdrmap/internal/util"
)

// Error represents a header error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrMalformedValue is returned when a stored value doesn't match the header grammar.
	ErrMalformedValue Error = "malformed header value"
	// ErrValueCount is returned when a header is stored with an unexpected number of values.
	ErrValueCount Error = "unexpected number of header values"
	// ErrSinkState is raised when an encode sink is used outside of its insert call.
	ErrSinkState Error = "invalid sink state"
)

// DecodeError describes a failure to decode stored values into a typed header.
type DecodeError struct {
	Name   Name
	Values []RawValue
	Err    error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprintf(sb, "decode %q header", e.Name)
	if len(e.Values) > 0 {
		sb.WriteString(" from")
		for i, v := range e.Values {
			if i > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(sb, " %q", util.Ellipsis(string(v), 64))
		}
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewDecodeError creates a [*DecodeError] for the header name and the values it failed to decode.
// The args are handled like in [errorutil.NewWrapperError] with [ErrMalformedValue] as the sentinel,
// unless the first arg is an error that already wraps [ErrValueCount].
func NewDecodeError(name Name, vals []RawValue, args ...any) error {
	var err error
	if e, ok := firstErr(args); ok && errors.Is(e, ErrValueCount) {
		err = e
	} else {
		err = errorutil.NewWrapperError(ErrMalformedValue, args...)
	}
	return &DecodeError{Name: name, Values: vals, Err: err} //errtrace:skip
}

func newValueCountError(name Name, vals []RawValue, want string) error {
	return &DecodeError{ //errtrace:skip
		Name:   name,
		Values: vals,
		Err:    errorutil.NewWrapperError(ErrValueCount, "got %d, want %s", len(vals), want),
	}
}

func firstErr(args []any) (error, bool) {
	if len(args) == 0 {
		return nil, false
	}
	err, ok := args[0].(error)
	return err, ok
}
