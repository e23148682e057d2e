package header

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Allow represents the Allow header field.
// The Allow header field lists the set of methods supported by the UA generating the message.
type Allow []RequestMethod

// CanonicName returns the canonical name of the header.
func (Allow) CanonicName() Name { return "Allow" }

// CompactName returns the compact name of the header (Allow has no compact form).
func (Allow) CompactName() Name { return "Allow" }

// Encode pushes every method as a separate value.
// An empty list pushes nothing.
func (hdr Allow) Encode(sink Sink) { pushList(sink, hdr) }

// Decode collects methods from all values, each value may be a comma-separated list.
// A blank value is an empty list, RFC 3261 permits an empty Allow.
func (hdr *Allow) Decode(vals []RawValue) error {
	toks, err := decodeTokens(hdr.CanonicName(), vals, true)
	if err != nil {
		return errtrace.Wrap(err)
	}
	meths := make(Allow, len(toks))
	for i, t := range toks {
		meths[i] = RequestMethod(t)
	}
	*hdr = meths
	return nil
}

// String returns the comma-separated list of methods.
func (hdr Allow) String() string { return joinList(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Allow) Format(f fmt.State, verb rune) {
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
		type hideMethods Allow
		type Allow hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Allow(hdr))
		return
	}
}

// Has checks whether the method is allowed.
func (hdr Allow) Has(m RequestMethod) bool {
	return slices.ContainsFunc(hdr, func(v RequestMethod) bool { return v.Equal(m) })
}

// Clone returns a copy of the header.
func (hdr Allow) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
// Methods are compared in order.
func (hdr Allow) Equal(val any) bool {
	var other Allow
	switch v := val.(type) {
	case Allow:
		other = v
	case *Allow:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(a, b RequestMethod) bool { return a.Equal(b) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr Allow) IsValid() bool {
	return !slices.ContainsFunc(hdr, func(m RequestMethod) bool { return !m.IsValid() })
}

func pushList[S ~[]E, E ~string](sink Sink, list S) {
	if len(list) == 0 {
		return
	}
	vals := make([]RawValue, len(list))
	for i, v := range list {
		vals[i] = RawValue(v)
	}
	sink.Push(vals...)
}

func joinList[S ~[]E, E ~string](list S) string {
	var sb strings.Builder
	for i, v := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(v))
	}
	return sb.String()
}
