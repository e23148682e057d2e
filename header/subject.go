package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/grammar"
)

// Subject represents the Subject header field.
// The Subject header field provides a summary or indicates the nature of the call.
type Subject string

// CanonicName returns the canonical name of the header.
func (Subject) CanonicName() Name { return "Subject" }

// CompactName returns the compact name of the header.
func (Subject) CompactName() Name { return "s" }

// Encode pushes the text, an empty subject is stored as an empty value.
func (hdr Subject) Encode(sink Sink) { sink.Push(RawValue(hdr)) }

// Decode reads the only stored value, it must be TEXT-UTF8 without control characters.
func (hdr *Subject) Decode(vals []RawValue) error {
	s, err := decodeText(hdr.CanonicName(), vals)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = Subject(s)
	return nil
}

func (hdr Subject) String() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Subject) Format(f fmt.State, verb rune) {
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
		type hideMethods Subject
		type Subject hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Subject(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Subject) Clone() Header { return hdr }

// IsValid checks whether the header is syntactically valid.
func (hdr Subject) IsValid() bool { return grammar.IsText(hdr) }

// Equal compares this header with another for equality.
func (hdr Subject) Equal(val any) bool {
	var other Subject
	switch v := val.(type) {
	case Subject:
		other = v
	case *Subject:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
