package header

import (
	"math"
	"strconv"

	"braces.dev/errtrace"
)

// MaxForwards represents the Max-Forwards header field.
// The Max-Forwards header field limits the number of proxies or gateways that can forward the request.
type MaxForwards uint8

// DefaultMaxForwards is the initial Max-Forwards value recommended by RFC 3261.
const DefaultMaxForwards MaxForwards = 70

// CanonicName returns the canonical name of the header.
func (MaxForwards) CanonicName() Name { return "Max-Forwards" }

// CompactName returns the compact name of the header (Max-Forwards has no compact form).
func (MaxForwards) CompactName() Name { return "Max-Forwards" }

// Encode pushes the decimal hop count.
func (hdr MaxForwards) Encode(sink Sink) { encodeUint(sink, uint64(hdr)) }

// Decode parses the hop count, values above 255 are rejected.
func (hdr *MaxForwards) Decode(vals []RawValue) error {
	n, err := decodeUint(hdr.CanonicName(), vals, 8)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = MaxForwards(min(n, math.MaxUint8))
	return nil
}

func (hdr MaxForwards) String() string { return strconv.FormatUint(uint64(hdr), 10) }

// Decrement returns the hop count reduced by one and whether the request may be forwarded.
func (hdr MaxForwards) Decrement() (MaxForwards, bool) {
	if hdr == 0 {
		return 0, false
	}
	return hdr - 1, true
}

// Equal compares this header with another for equality.
func (hdr MaxForwards) Equal(val any) bool {
	var other MaxForwards
	switch v := val.(type) {
	case MaxForwards:
		other = v
	case *MaxForwards:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
