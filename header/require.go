package header

import (
	"fmt"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/grammar"
	"github.com/ghettovoice/hdrmap/internal/util"
)

// Require represents the Require header field.
// The Require header field is used by UACs to tell UASs about options that the UAC expects the UAS to support
// in order to process the request.
type Require []string

// CanonicName returns the canonical name of the header.
func (Require) CanonicName() Name { return "Require" }

// CompactName returns the compact name of the header (Require has no compact form).
func (Require) CompactName() Name { return "Require" }

// Encode pushes every option tag as a separate value.
func (hdr Require) Encode(sink Sink) { pushList(sink, hdr) }

// Decode collects option tags from all values.
// Blank values are malformed.
func (hdr *Require) Decode(vals []RawValue) error {
	tags, err := decodeOptionTags(hdr.CanonicName(), vals, false)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = tags
	return nil
}

func (hdr Require) String() string { return joinList(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Require) Format(f fmt.State, verb rune) {
	formatOptionTags(f, verb, hdr.CanonicName(), hdr)
}

// Has checks whether the option tag is listed, tags are compared case-insensitively.
func (hdr Require) Has(tag string) bool { return hasOptionTag(hdr, tag) }

// Clone returns a copy of the header.
func (hdr Require) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Require) Equal(val any) bool {
	var other Require
	switch v := val.(type) {
	case Require:
		other = v
	case *Require:
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
func (hdr Require) IsValid() bool { return validOptionTags(hdr) }

func decodeOptionTags(name Name, vals []RawValue, allowBlank bool) ([]string, error) {
	return errtrace.Wrap2(decodeTokens(name, vals, allowBlank))
}

func hasOptionTag[S ~[]string](tags S, tag string) bool {
	return slices.ContainsFunc(tags, func(v string) bool { return util.EqFold(v, tag) })
}

func equalOptionTags[S ~[]string](a, b S) bool {
	return slices.EqualFunc(a, b, util.EqFold[string, string])
}

func validOptionTags[S ~[]string](tags S) bool {
	return !slices.ContainsFunc(tags, func(v string) bool { return !grammar.IsToken(v) })
}

func formatOptionTags[S ~[]string](f fmt.State, verb rune, name Name, tags S) {
	switch verb {
	case 's':
		if f.Flag('+') {
			fmt.Fprint(f, name, ": ", joinList(tags))
			return
		}
		fmt.Fprint(f, joinList(tags))
	case 'q':
		fmt.Fprint(f, strconv.Quote(joinList(tags)))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), []string(tags))
	}
}
