package header

import (
	"braces.dev/errtrace"
	"github.com/go4org/hashtriemap"
)

type decodeFunc func(vals []RawValue) (Header, error)

var decoders hashtriemap.HashTrieMap[Name, decodeFunc]

// Register makes the header type H known to [Decode] under its canonical name.
// A later registration for the same name replaces the earlier one.
//
// Built-in header types are registered on package init. Register is safe
// for concurrent use, but registration should finish before headers are decoded
// to avoid partially configured behavior:
//
//	func init() {
//		header.Register[XCount]()
//	}
func Register[H any, PH Decoder[H]]() {
	decoders.Store(nameOf[H, PH](), func(vals []RawValue) (Header, error) {
		var hdr H
		if err := PH(&hdr).Decode(vals); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if h, ok := any(hdr).(Header); ok {
			return h, nil
		}
		return PH(&hdr), nil
	})
}

// Unregister removes the header type registered for the name.
func Unregister(name Name) {
	decoders.Delete(CanonicName(name))
}

// IsRegistered checks whether a header type is registered for the name.
func IsRegistered(name Name) bool {
	_, ok := decoders.Load(CanonicName(name))
	return ok
}

// Decode reads the values stored under the name and decodes them
// with the header type registered for the name.
//
// Header types implementing [Header] with value receivers are returned as values,
// others as pointers. Names without a registered type are returned as [*Any].
// If the map has no values for the name, it returns nil and false.
//
// Example usage:
//
//	hdr, ok, err := header.Decode(m, "Content-Length")
//	if cl, isCL := hdr.(header.ContentLength); isCL {
//		...
//	}
func Decode(m Map, name Name) (hdr Header, ok bool, err error) {
	name = CanonicName(name)
	vals := m.GetAll(name)
	if len(vals) == 0 {
		return nil, false, nil
	}

	cfg := config()
	dec, registered := decoders.Load(name)
	if !registered {
		cfg.metrics.recordDecode(name, nil)
		return &Any{Name: name, Values: vals}, true, nil
	}

	hdr, err = dec(vals)
	cfg.metrics.recordDecode(name, err)
	if err != nil {
		return nil, false, errtrace.Wrap(err)
	}
	return hdr, true, nil
}

func init() {
	Register[Allow]()
	Register[CallID]()
	Register[ContentLength]()
	Register[CSeq]()
	Register[Expires]()
	Register[MaxForwards]()
	Register[MinExpires]()
	Register[ProxyRequire]()
	Register[Require]()
	Register[Server]()
	Register[Subject]()
	Register[Supported]()
	Register[Unsupported]()
	Register[UserAgent]()
}
