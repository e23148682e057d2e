package header

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination ../internal/testutil/mapmock/mapmock.go -package mapmock . Map

import "github.com/ghettovoice/hdrmap"

// Name represents a header name.
// See [hdrmap.Name].
type Name = hdrmap.Name

// RawValue represents a single stored header value.
// See [hdrmap.RawValue].
type RawValue = hdrmap.RawValue

// CanonicName converts name to the canonical form.
// See [hdrmap.CanonicName].
func CanonicName[T ~string](name T) Name { return hdrmap.CanonicName(name) }

// Sink receives the raw values a header encodes to.
// Values are stored in the order they are pushed.
type Sink interface {
	Push(vals ...RawValue)
}

// Header is a typed header value that knows its name and how to encode itself.
type Header interface {
	// CanonicName returns the canonical name of the header.
	// It must be constant for the type and must not depend on the receiver value,
	// since it is also called on zero values.
	CanonicName() Name
	// Encode pushes the raw values of the header into the sink in the order
	// they must be stored. It must not assume the sink is empty.
	Encode(sink Sink)
}

// Decoder is the constraint for header types that can be read back from a [Map].
// H is the header type, the pointer to H implements [Header] and decodes
// a value of H from the complete, non-empty, ordered set of stored values.
// Decode returns a [*DecodeError] when the values don't fit the type.
type Decoder[H any] interface {
	*H
	Header
	Decode(vals []RawValue) error
}

// Map is the header storage the typed accessors work on.
// [*hdrmap.Map] implements it.
type Map interface {
	// Entry returns the storage slot of the name without mutating the map.
	Entry(name Name) hdrmap.Entry
	// GetAll returns all values stored under the name in insertion order.
	GetAll(name Name) []RawValue
}

func nameOf[H any, PH Decoder[H]]() Name {
	var hdr H
	return PH(&hdr).CanonicName()
}
