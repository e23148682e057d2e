package header

import (
	"fmt"
	"slices"

	"braces.dev/errtrace"
)

// Unsupported represents the Unsupported header field.
// The Unsupported header field lists the features not supported by the UAS.
type Unsupported []string

// CanonicName returns the canonical name of the header.
func (Unsupported) CanonicName() Name { return "Unsupported" }

// CompactName returns the compact name of the header (Unsupported has no compact form).
func (Unsupported) CompactName() Name { return "Unsupported" }

// Encode pushes every option tag as a separate value.
func (hdr Unsupported) Encode(sink Sink) { pushList(sink, hdr) }

// Decode collects option tags from all values.
// Blank values are malformed.
func (hdr *Unsupported) Decode(vals []RawValue) error {
	tags, err := decodeOptionTags(hdr.CanonicName(), vals, false)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = tags
	return nil
}

// String returns the comma-separated list of option tags.
func (hdr Unsupported) String() string { return joinList(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Unsupported) Format(f fmt.State, verb rune) {
	formatOptionTags(f, verb, hdr.CanonicName(), hdr)
}

// Has checks whether the option tag is listed, tags are compared case-insensitively.
func (hdr Unsupported) Has(tag string) bool { return hasOptionTag(hdr, tag) }

// Clone returns a copy of the header.
func (hdr Unsupported) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Unsupported) Equal(val any) bool {
	var other Unsupported
	switch v := val.(type) {
	case Unsupported:
		other = v
	case *Unsupported:
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
func (hdr Unsupported) IsValid() bool { return validOptionTags(hdr) }
