package header

import (
	"fmt"
	"slices"

	"braces.dev/errtrace"
)

// Supported represents the Supported header field.
// The Supported header field enumerates all the extensions supported by the UAC or UAS.
type Supported []string

// CanonicName returns the canonical name of the header.
func (Supported) CanonicName() Name { return "Supported" }

// CompactName returns the compact name of the header.
func (Supported) CompactName() Name { return "k" }

// Encode pushes every option tag as a separate value.
func (hdr Supported) Encode(sink Sink) { pushList(sink, hdr) }

// Decode collects option tags from all values.
// A blank value is an empty list.
func (hdr *Supported) Decode(vals []RawValue) error {
	tags, err := decodeOptionTags(hdr.CanonicName(), vals, true)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = tags
	return nil
}

// String returns the comma-separated list of option tags.
func (hdr Supported) String() string { return joinList(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Supported) Format(f fmt.State, verb rune) {
	formatOptionTags(f, verb, hdr.CanonicName(), hdr)
}

// Has checks whether the option tag is listed, tags are compared case-insensitively.
func (hdr Supported) Has(tag string) bool { return hasOptionTag(hdr, tag) }

// Clone returns a copy of the header.
func (hdr Supported) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Supported) Equal(val any) bool {
	var other Supported
	switch v := val.(type) {
	case Supported:
		other = v
	case *Supported:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalOptionTags(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Supported) IsValid() bool { return validOptionTags(hdr) }
