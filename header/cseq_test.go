package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/hdrmap"
	"github.com/ghettovoice/hdrmap/header"
)

func TestCSeq_Decode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		vals    []hdrmap.RawValue
		want    header.CSeq
		wantErr error
	}{
		{"invite", []hdrmap.RawValue{"4711 INVITE"}, header.CSeq{SeqNum: 4711, Method: header.RequestMethodInvite}, nil},
		{"extension method", []hdrmap.RawValue{"1 FOO"}, header.CSeq{SeqNum: 1, Method: "FOO"}, nil},
		{"tabs", []hdrmap.RawValue{"1\t \tACK"}, header.CSeq{SeqNum: 1, Method: header.RequestMethodAck}, nil},
		{"no method", []hdrmap.RawValue{"1"}, header.CSeq{}, header.ErrMalformedValue},
		{"no number", []hdrmap.RawValue{"INVITE"}, header.CSeq{}, header.ErrMalformedValue},
		{"too big", []hdrmap.RawValue{"4294967296 INVITE"}, header.CSeq{}, header.ErrMalformedValue},
		{"two values", []hdrmap.RawValue{"1 INVITE", "2 INVITE"}, header.CSeq{}, header.ErrValueCount},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got header.CSeq
			err := got.Decode(c.vals)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("hdr.Decode(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.vals, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("hdr.Decode(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.vals, got, c.want, diff)
			}
		})
	}
}

func TestCSeq_RoundTrip(t *testing.T) {
	t.Parallel()

	m := hdrmap.New(nil)
	header.TypedInsert(m, &header.CSeq{SeqNum: 2, Method: header.RequestMethodBye})

	if got, want := m.GetAll("CSeq"), []hdrmap.RawValue{"2 BYE"}; !cmp.Equal(got, want) {
		t.Errorf("m.GetAll(\"CSeq\") = %q, want %q", got, want)
	}
	got, ok, err := header.TypedTryGet[header.CSeq](m)
	if err != nil || !ok {
		t.Fatalf("header.TypedTryGet[header.CSeq](m) = _, %v, %v, want true, nil", ok, err)
	}
	if !got.Equal(&header.CSeq{SeqNum: 2, Method: "bye"}) {
		t.Errorf("header.TypedTryGet[header.CSeq](m) = %v, want 2 BYE", &got)
	}
}

func TestCSeq_RoundTripOverRange(t *testing.T) {
	t.Parallel()

	m := hdrmap.New(nil)
	header.TypedInsert(m, &header.CSeq{SeqNum: 1 << 33, Method: header.RequestMethodInvite})

	if got, want := m.GetAll("CSeq"), []hdrmap.RawValue{"4294967295 INVITE"}; !cmp.Equal(got, want) {
		t.Errorf("m.GetAll(\"CSeq\") = %q, want %q", got, want)
	}
	got, ok, err := header.TypedTryGet[header.CSeq](m)
	if err != nil || !ok {
		t.Fatalf("header.TypedTryGet[header.CSeq](m) = _, %v, %v, want true, nil", ok, err)
	}
	if diff := cmp.Diff(got, header.CSeq{SeqNum: 4294967295, Method: header.RequestMethodInvite}); diff != "" {
		t.Errorf("header.TypedTryGet[header.CSeq](m) mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestCSeq_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.CSeq
		want bool
	}{
		{"nil", nil, false},
		{"zero", &header.CSeq{}, false},
		{"valid", &header.CSeq{SeqNum: 1, Method: header.RequestMethodInvite}, true},
		{"bad method", &header.CSeq{SeqNum: 1, Method: "IN VITE"}, false},
		{"too big", &header.CSeq{SeqNum: 1 << 33, Method: header.RequestMethodInvite}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.IsValid(); got != c.want {
				t.Errorf("hdr.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
