package header

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// Expires represents the Expires header field.
// The Expires header field gives the relative time after which the message (or content) expires.
// The duration is carried with a precision of seconds.
type Expires struct {
	time.Duration
}

// CanonicName returns the canonical name of the header.
func (*Expires) CanonicName() Name { return "Expires" }

// CompactName returns the compact name of the header (Expires has no compact form).
func (*Expires) CompactName() Name { return "Expires" }

// Encode pushes the delta-seconds value.
func (hdr *Expires) Encode(sink Sink) {
	if hdr == nil {
		return
	}
	encodeUint(sink, deltaSeconds(hdr.Duration))
}

// Decode parses the delta-seconds value.
func (hdr *Expires) Decode(vals []RawValue) error {
	d, err := decodeDeltaSeconds(hdr.CanonicName(), vals)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.Duration = d
	return nil
}

func (hdr *Expires) String() string {
	if hdr == nil {
		return ""
	}
	return strconv.FormatUint(deltaSeconds(hdr.Duration), 10)
}

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Expires) Format(f fmt.State, verb rune) {
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
		type hideMethods Expires
		type Expires hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Expires)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *Expires) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *Expires) Equal(val any) bool {
	var other *Expires
	switch v := val.(type) {
	case Expires:
		other = &v
	case *Expires:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return deltaSeconds(hdr.Duration) == deltaSeconds(other.Duration)
}

// deltaSeconds clamps d to the delta-seconds range 0..2**32-1.
func deltaSeconds(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return min(uint64(d/time.Second), math.MaxUint32)
}

// RFC 3261 limits delta-seconds to 2**32-1.
func decodeDeltaSeconds(name Name, vals []RawValue) (time.Duration, error) {
	n, err := decodeUint(name, vals, 32)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return time.Duration(min(n, math.MaxUint32)) * time.Second, nil
}
