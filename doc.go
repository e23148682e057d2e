// Package hdrmap provides a multi-valued map of header names to raw header values,
// as found in SIP and HTTP messages.
//
// # Overview
//
// A [Map] stores, for each canonical header [Name], an ordered list of [RawValue].
// Values of a name keep their insertion order, and names keep the order of their
// first insertion, so a map renders back in a stable order.
//
// The map is deliberately untyped. Typed access to the stored values
// (Content-Length as an integer, Allow as a list of methods and so on) is provided
// by the [github.com/ghettovoice/hdrmap/header] package on top of the
// [Map.Entry] and [Map.GetAll] primitives.
//
// # Header Naming and Canonicalization
//
// Names are canonicalized with [CanonicName]: the first letter and any letter
// following a hyphen are upper-cased, the rest lower-cased, and SIP compact and
// irregular forms are mapped to their full names:
//
//	"l"       → "Content-Length"
//	"i"       → "Call-ID"
//	"Cseq"    → "CSeq"
//	"x-count" → "X-Count"
//
// # Entries
//
// [Map.Entry] returns the storage slot of a name, either a [*VacantEntry]
// (no values stored) or an [*OccupiedEntry] (one or more values stored).
// Looking up an entry never mutates the map; a vacant entry materializes only
// when [VacantEntry.Insert] is called.
//
//	switch e := m.Entry("Via").(type) {
//	case *hdrmap.VacantEntry:
//		e.Insert("SIP/2.0/UDP pc33.atlanta.com")
//	case *hdrmap.OccupiedEntry:
//		e.Append("SIP/2.0/UDP pc33.atlanta.com")
//	}
//
// An entry handle stays valid until the next mutation of the map made
// through any other handle or map method.
//
// # Concurrency
//
// A Map is not safe for concurrent mutation. Callers sharing a map between
// goroutines must synchronize access themselves.
package hdrmap
