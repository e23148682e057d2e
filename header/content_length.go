package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/util"
)

// ContentLength represents the Content-Length header field.
// The Content-Length header field indicates the size of the message body in decimal number of octets.
type ContentLength uint

// CanonicName returns the canonical name of the header.
func (ContentLength) CanonicName() Name { return "Content-Length" }

// CompactName returns the compact name of the header.
func (ContentLength) CompactName() Name { return "l" }

// Encode pushes the decimal length.
func (hdr ContentLength) Encode(sink Sink) { encodeUint(sink, uint64(hdr)) }

// Decode parses the length.
// Several values are accepted when all of them carry the same number.
func (hdr *ContentLength) Decode(vals []RawValue) error {
	name := hdr.CanonicName()
	if len(vals) == 0 {
		return errtrace.Wrap(newValueCountError(name, vals, "at least 1"))
	}

	var l uint64
	for i, v := range vals {
		n, err := parseUint(name, vals, util.TrimSP(v), 64)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if i > 0 && n != l {
			return errtrace.Wrap(NewDecodeError(name, vals, "conflicting lengths %d and %d", l, n))
		}
		l = n
	}
	*hdr = ContentLength(l)
	return nil
}

func (hdr ContentLength) String() string { return strconv.FormatUint(uint64(hdr), 10) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentLength) Format(f fmt.State, verb rune) {
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
		type hideMethods ContentLength
		type ContentLength hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ContentLength(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr ContentLength) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr ContentLength) Equal(val any) bool {
	var other ContentLength
	switch v := val.(type) {
	case ContentLength:
		other = v
	case *ContentLength:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
