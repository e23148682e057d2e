package header_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/hdrmap"
	"github.com/ghettovoice/hdrmap/header"
)

func TestAllow_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Allow
		want []hdrmap.RawValue
	}{
		{"nil", nil, nil},
		{"empty", header.Allow{}, nil},
		{"one", header.Allow{header.RequestMethodInvite}, []hdrmap.RawValue{"INVITE"}},
		{"many", header.Allow{header.RequestMethodInvite, header.RequestMethodAck, header.RequestMethodBye}, []hdrmap.RawValue{"INVITE", "ACK", "BYE"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := encodeValues(c.hdr); !cmp.Equal(got, c.want) {
				t.Errorf("encodeValues(%v) = %q, want %q", c.hdr, got, c.want)
			}
		})
	}
}

func TestAllow_Decode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		vals    []hdrmap.RawValue
		want    header.Allow
		wantErr error
	}{
		{"separate values", []hdrmap.RawValue{"INVITE", "ACK"}, header.Allow{"INVITE", "ACK"}, nil},
		{"list", []hdrmap.RawValue{"INVITE, ACK,BYE"}, header.Allow{"INVITE", "ACK", "BYE"}, nil},
		{"mixed", []hdrmap.RawValue{"INVITE , ACK", "BYE"}, header.Allow{"INVITE", "ACK", "BYE"}, nil},
		{"empty value", []hdrmap.RawValue{""}, header.Allow{}, nil},
		{"blank value", []hdrmap.RawValue{"  "}, header.Allow{}, nil},
		{"empty among others", []hdrmap.RawValue{"INVITE", "", "ACK"}, header.Allow{"INVITE", "ACK"}, nil},
		{"trailing comma", []hdrmap.RawValue{"INVITE,"}, nil, header.ErrMalformedValue},
		{"bad method", []hdrmap.RawValue{"IN VITE"}, nil, header.ErrMalformedValue},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got header.Allow
			err := got.Decode(c.vals)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("hdr.Decode(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.vals, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("hdr.Decode(%q) = %v, want %v\ndiff (-got +want):\n%v", c.vals, got, c.want, diff)
			}
		})
	}
}

func TestAllow_Methods(t *testing.T) {
	t.Parallel()

	hdr := header.Allow{header.RequestMethodInvite, header.RequestMethodAck}

	if !hdr.Has("invite") {
		t.Error("hdr.Has(\"invite\") = false, want true")
	}
	if hdr.Has(header.RequestMethodBye) {
		t.Error("hdr.Has(BYE) = true, want false")
	}
	if got, want := fmt.Sprintf("%+s", hdr), "Allow: INVITE, ACK"; got != want {
		t.Errorf("fmt.Sprintf(\"%%+s\", hdr) = %q, want %q", got, want)
	}
	if !hdr.Equal(header.Allow{"invite", "ack"}) {
		t.Error("hdr.Equal(lower case) = false, want true")
	}
	if hdr.Equal(header.Allow{"ACK", "INVITE"}) {
		t.Error("hdr.Equal(reordered) = true, want false")
	}

	clone := hdr.Clone().(header.Allow)
	clone[0] = header.RequestMethodBye
	if hdr[0] != header.RequestMethodInvite {
		t.Errorf("hdr[0] = %q after clone change, want INVITE", hdr[0])
	}
}
