package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/grammar"
)

// Server represents the Server header field.
// The Server header field contains information about the software used by the UAS to handle the request.
type Server string

// CanonicName returns the canonical name of the header.
func (Server) CanonicName() Name { return "Server" }

// CompactName returns the compact name of the header (Server has no compact form).
func (Server) CompactName() Name { return "Server" }

// Encode pushes the text, an empty value pushes nothing.
func (hdr Server) Encode(sink Sink) {
	if hdr == "" {
		return
	}
	sink.Push(RawValue(hdr))
}

// Decode reads the only stored value, it must be TEXT-UTF8 without control characters.
func (hdr *Server) Decode(vals []RawValue) error {
	s, err := decodeText(hdr.CanonicName(), vals)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = Server(s)
	return nil
}

func (hdr Server) String() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Server) Format(f fmt.State, verb rune) {
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
		type hideMethods Server
		type Server hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Server(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Server) Clone() Header { return hdr }

// IsValid checks whether the header is syntactically valid.
func (hdr Server) IsValid() bool { return hdr != "" && grammar.IsText(hdr) }

// Equal compares this header with another for equality.
func (hdr Server) Equal(val any) bool {
	var other Server
	switch v := val.(type) {
	case Server:
		other = v
	case *Server:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
