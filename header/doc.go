// Package header provides typed SIP headers on top of a multi-valued header map.
//
// A typed header knows its canonical name and how to turn itself into one or more
// raw values ([Header.Encode]). Types that can also be read back implement [Decoder]:
// they rebuild themselves from the complete ordered set of values stored under their name.
// The package ships types for the common single-value and list headers of RFC 3261,
// other headers can be carried by [Any] or by application types.
//
// # Insertion
//
// [TypedInsert] looks up the entry for the header name and hands the header a [Sink].
// The first pushed value replaces everything stored under the name before, or creates the entry,
// every next value is appended after it:
//
//	m := hdrmap.New(nil)
//	m.Append("Allow", "OPTIONS")
//	header.TypedInsert(m, header.Allow{header.RequestMethodInvite, header.RequestMethodAck})
//	// Allow: INVITE
//	// Allow: ACK
//
// A header that pushes no values leaves the map untouched, so inserting an empty list
// neither creates nor clears the entry.
//
// The sink is only valid during the Encode call. Pushing into a retained sink panics
// with an error wrapping [ErrSinkState].
//
// # Retrieval
//
// [TypedTryGet] decodes all values stored under the canonical name of the type:
//
//	cl, ok, err := header.TypedTryGet[header.ContentLength](m)
//
// Absence is not an error: if nothing is stored under the name, ok is false and the decoder
// is not called. Decode failures are returned as [*DecodeError] wrapping [ErrMalformedValue]
// or [ErrValueCount]. [TypedGet] treats such failures as absence.
// Decoding never changes the map.
//
// # Custom headers
//
// Application types plug in by implementing the same methods:
//
//	type XCount uint
//
//	func (XCount) CanonicName() header.Name { return "X-Count" }
//
//	func (c XCount) Encode(sink header.Sink) {
//		sink.Push(header.RawValue(strconv.FormatUint(uint64(c), 10)))
//	}
//
//	func (c *XCount) Decode(vals []header.RawValue) error { ... }
//
// Registered types ([Register]) are also used by [Decode], which returns a [Header] for any name
// and falls back to [*Any] for unknown ones.
//
// # Configuration
//
// [Configure] sets the logger and the OpenTelemetry meter provider used by the accessors.
// By default the package logs through [log.Default] and records metrics with the global meter provider.
package header
