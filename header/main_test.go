package header_test

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/ghettovoice/hdrmap"
	"github.com/ghettovoice/hdrmap/header"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// encodeValues returns the raw values the header is stored as.
func encodeValues(hdr header.Header) []hdrmap.RawValue {
	m := hdrmap.New(nil)
	header.TypedInsert(m, hdr)
	return m.GetAll(hdr.CanonicName())
}

func ptr[T any](v T) *T { return &v }
