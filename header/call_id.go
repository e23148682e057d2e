package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"
	"github.com/google/uuid"

	"github.com/ghettovoice/hdrmap/internal/grammar"
)

// CallID represents the Call-ID header field.
// The Call-ID header field uniquely identifies a particular invitation or all registrations of a particular client.
type CallID string

// NewCallID generates a random Call-ID.
// If host is not empty, it is appended after "@" as RFC 3261 recommends.
func NewCallID(host string) CallID {
	id := uuid.NewString()
	if host != "" {
		id += "@" + host
	}
	return CallID(id)
}

// CanonicName returns the canonical name of the header.
func (CallID) CanonicName() Name { return "Call-ID" }

// CompactName returns the compact name of the header.
func (CallID) CompactName() Name { return "i" }

// Encode pushes the identifier as is. An empty identifier pushes nothing.
func (hdr CallID) Encode(sink Sink) {
	if hdr == "" {
		return
	}
	sink.Push(RawValue(hdr))
}

// Decode reads the only stored value, it must be word [ "@" word ].
func (hdr *CallID) Decode(vals []RawValue) error {
	v, err := singleValue(hdr.CanonicName(), vals)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !grammar.IsCallID(v) {
		return errtrace.Wrap(NewDecodeError(hdr.CanonicName(), vals, "%q is not a valid call id", v))
	}
	*hdr = CallID(v)
	return nil
}

func (hdr CallID) String() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CallID) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			fmt.Fprint(f, hdr.CanonicName(), ": ", string(hdr))
			return
		}
		fmt.Fprint(f, string(hdr))
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(string(hdr)))
		return
	default:
		type hideMethods CallID
		type CallID hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CallID(hdr))
		return
	}
}

// IsValid checks whether the header is syntactically valid.
func (hdr CallID) IsValid() bool { return grammar.IsCallID(hdr) }

// Equal compares this header with another for equality.
// Call-ID values are compared case-sensitively.
func (hdr CallID) Equal(val any) bool {
	var other CallID
	switch v := val.(type) {
	case CallID:
		other = v
	case *CallID:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
