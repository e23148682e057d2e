package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/grammar"
)

// UserAgent represents the User-Agent header field.
// The User-Agent header field contains information about the UAC originating the request.
type UserAgent string

// CanonicName returns the canonical name of the header.
func (UserAgent) CanonicName() Name { return "User-Agent" }

// CompactName returns the compact name of the header (User-Agent has no compact form).
func (UserAgent) CompactName() Name { return "User-Agent" }

// Encode pushes the text, an empty value pushes nothing.
func (hdr UserAgent) Encode(sink Sink) {
	if hdr == "" {
		return
	}
	sink.Push(RawValue(hdr))
}

// Decode reads the only stored value, it must be TEXT-UTF8 without control characters.
func (hdr *UserAgent) Decode(vals []RawValue) error {
	s, err := decodeText(hdr.CanonicName(), vals)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = UserAgent(s)
	return nil
}

func (hdr UserAgent) String() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr UserAgent) Format(f fmt.State, verb rune) {
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
		type hideMethods UserAgent
		type UserAgent hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), UserAgent(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr UserAgent) Clone() Header { return hdr }

// IsValid checks whether the header is syntactically valid.
func (hdr UserAgent) IsValid() bool { return hdr != "" && grammar.IsText(hdr) }

// Equal compares this header with another for equality.
func (hdr UserAgent) Equal(val any) bool {
	var other UserAgent
	switch v := val.(type) {
	case UserAgent:
		other = v
	case *UserAgent:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
