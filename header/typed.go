package header

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap"
)

// TypedInsert encodes the header into the map under its canonical name.
//
// The values produced by the header fully replace the values stored for the name before.
// A header that encodes to no values leaves the map untouched.
//
// Example usage:
//
//	header.TypedInsert(m, header.ContentLength(42))
//	header.TypedInsert(m, header.Allow{header.RequestMethodInvite, header.RequestMethodAck})
func TypedInsert(m Map, hdr Header) {
	name := hdr.CanonicName()
	sink := newToValues(m.Entry(name))
	hdr.Encode(sink)
	sink.close()

	cfg := config()
	cfg.metrics.recordInsert(name, sink.num)
	if lg := cfg.log(); lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.LogAttrs(context.Background(), slog.LevelDebug, "typed header inserted",
			slog.Any("header", name),
			slog.Int("values", sink.num),
		)
	}
}

// TypedTryGet finds all values stored under the canonical name of H and decodes them into H.
//
// If the map has no values for the name, it returns the zero H and false without calling the decoder.
// Otherwise the decoder gets the complete ordered set of values, and its error, if any,
// is returned as is.
//
// Example usage:
//
//	cl, ok, err := header.TypedTryGet[header.ContentLength](m)
func TypedTryGet[H any, PH Decoder[H]](m Map) (hdr H, ok bool, err error) {
	name := nameOf[H, PH]()
	vals := m.GetAll(name)
	if len(vals) == 0 {
		return hdr, false, nil
	}

	cfg := config()
	if err := PH(&hdr).Decode(vals); err != nil {
		cfg.metrics.recordDecode(name, err)
		var zero H
		return zero, false, errtrace.Wrap(err)
	}
	cfg.metrics.recordDecode(name, nil)
	return hdr, true, nil
}

// TypedGet is like [TypedTryGet] but treats values that fail to decode as absent.
// The decode error is logged at debug level.
//
// Example usage:
//
//	if cl, ok := header.TypedGet[header.ContentLength](m); ok {
//		...
//	}
func TypedGet[H any, PH Decoder[H]](m Map) (H, bool) {
	hdr, ok, err := TypedTryGet[H, PH](m)
	if err != nil {
		config().log().LogAttrs(context.Background(), slog.LevelDebug, "typed header decode failed",
			slog.Any("header", nameOf[H, PH]()),
			slog.Any("error", err),
		)
		return hdr, false
	}
	return hdr, ok
}

// TypedRemove deletes all values stored under the canonical name of H.
// It reports whether there was anything to delete.
func TypedRemove[H any, PH Decoder[H]](m Map) bool {
	e, ok := m.Entry(nameOf[H, PH]()).(*hdrmap.OccupiedEntry)
	if !ok {
		return false
	}
	e.Remove()
	return true
}
