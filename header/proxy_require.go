package header

import (
	"fmt"
	"slices"

	"braces.dev/errtrace"
)

// ProxyRequire represents the Proxy-Require header field.
// The Proxy-Require header field is used to indicate proxy-sensitive features that must be supported by the proxy.
type ProxyRequire []string

// CanonicName returns the canonical name of the header.
func (ProxyRequire) CanonicName() Name { return "Proxy-Require" }

// CompactName returns the compact name of the header (Proxy-Require has no compact form).
func (ProxyRequire) CompactName() Name { return "Proxy-Require" }

// Encode pushes every option tag as a separate value.
func (hdr ProxyRequire) Encode(sink Sink) { pushList(sink, hdr) }

// Decode collects option tags from all values.
// Blank values are malformed.
func (hdr *ProxyRequire) Decode(vals []RawValue) error {
	tags, err := decodeOptionTags(hdr.CanonicName(), vals, false)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = tags
	return nil
}

// String returns the comma-separated list of option tags.
func (hdr ProxyRequire) String() string { return joinList(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ProxyRequire) Format(f fmt.State, verb rune) {
	formatOptionTags(f, verb, hdr.CanonicName(), hdr)
}

// Has checks whether the option tag is listed, tags are compared case-insensitively.
func (hdr ProxyRequire) Has(tag string) bool { return hasOptionTag(hdr, tag) }

// Clone returns a copy of the header.
func (hdr ProxyRequire) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ProxyRequire) Equal(val any) bool {
	var other ProxyRequire
	switch v := val.(type) {
	case ProxyRequire:
		other = v
	case *ProxyRequire:
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
func (hdr ProxyRequire) IsValid() bool { return validOptionTags(hdr) }
