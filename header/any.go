package header

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Any holds the raw values of a header that has no registered type.
// It can be used to insert or read headers that aren't natively supported by the lib.
//
// Any can't be used with [TypedTryGet] or [TypedGet] since its name is only known at runtime,
// use [Decode] to read it back.
type Any struct {
	Name   Name
	Values []RawValue
}

// CanonicName returns the canonical form of the header name.
func (hdr *Any) CanonicName() Name {
	if hdr == nil {
		return ""
	}
	return CanonicName(hdr.Name)
}

// Encode pushes the raw values as is.
func (hdr *Any) Encode(sink Sink) {
	if hdr == nil || len(hdr.Values) == 0 {
		return
	}
	sink.Push(hdr.Values...)
}

func (hdr *Any) String() string {
	if hdr == nil {
		return ""
	}

	vals := make([]string, len(hdr.Values))
	for i, v := range hdr.Values {
		vals[i] = string(v)
	}
	return strings.Join(vals, ", ")
}

func (hdr *Any) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			fmt.Fprint(f, hdr.CanonicName(), ": ", hdr.String())
			return
		}
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Any
		type Any hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Any)(hdr))
		return
	}
}

func (hdr *Any) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Any{Name: hdr.Name, Values: slices.Clone(hdr.Values)}
}

// Equal compares names case-insensitively and values case-sensitively in order.
func (hdr *Any) Equal(val any) bool {
	var other *Any
	switch v := val.(type) {
	case Any:
		other = &v
	case *Any:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.Name.Equal(other.Name) && slices.Equal(hdr.Values, other.Values)
}

// IsValid checks whether the header name and every value are valid.
func (hdr *Any) IsValid() bool {
	if hdr == nil || !hdr.Name.IsValid() {
		return false
	}
	return !slices.ContainsFunc(hdr.Values, func(v RawValue) bool { return !v.IsValid() })
}
