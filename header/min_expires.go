package header

import (
	"fmt"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// MinExpires represents the Min-Expires header field.
// The Min-Expires header field conveys the minimum refresh interval supported for soft-state elements managed by that server.
type MinExpires struct {
	time.Duration
}

// CanonicName returns the canonical name of the header.
func (*MinExpires) CanonicName() Name { return "Min-Expires" }

// CompactName returns the compact name of the header (Min-Expires has no compact form).
func (*MinExpires) CompactName() Name { return "Min-Expires" }

// Encode pushes the delta-seconds value.
func (hdr *MinExpires) Encode(sink Sink) {
	if hdr == nil {
		return
	}
	encodeUint(sink, deltaSeconds(hdr.Duration))
}

// Decode parses the delta-seconds value.
func (hdr *MinExpires) Decode(vals []RawValue) error {
	d, err := decodeDeltaSeconds(hdr.CanonicName(), vals)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.Duration = d
	return nil
}

func (hdr *MinExpires) String() string {
	if hdr == nil {
		return ""
	}
	return strconv.FormatUint(deltaSeconds(hdr.Duration), 10)
}

// Clone returns a copy of the header.
func (hdr *MinExpires) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *MinExpires) Format(f fmt.State, verb rune) {
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
		type hideMethods MinExpires
		type MinExpires hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*MinExpires)(hdr))
		return
	}
}

// Equal compares this header with another for equality.
func (hdr *MinExpires) Equal(val any) bool {
	var other *MinExpires
	switch v := val.(type) {
	case MinExpires:
		other = &v
	case *MinExpires:
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
