package header_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/hdrmap"
	"github.com/ghettovoice/hdrmap/header"
)

func TestContentLength_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.ContentLength
		want []hdrmap.RawValue
	}{
		{"zero", 0, []hdrmap.RawValue{"0"}},
		{"full", 123, []hdrmap.RawValue{"123"}},
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

func TestContentLength_Decode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		vals    []hdrmap.RawValue
		want    header.ContentLength
		wantErr error
	}{
		{"zero", []hdrmap.RawValue{"0"}, 0, nil},
		{"number", []hdrmap.RawValue{"1024"}, 1024, nil},
		{"spaces", []hdrmap.RawValue{" 12 "}, 12, nil},
		{"same values", []hdrmap.RawValue{"5", "5"}, 5, nil},
		{"different values", []hdrmap.RawValue{"5", "6"}, 0, header.ErrMalformedValue},
		{"empty", []hdrmap.RawValue{""}, 0, header.ErrMalformedValue},
		{"sign", []hdrmap.RawValue{"+5"}, 0, header.ErrMalformedValue},
		{"negative", []hdrmap.RawValue{"-5"}, 0, header.ErrMalformedValue},
		{"overflow", []hdrmap.RawValue{"184467440737095516150"}, 0, header.ErrMalformedValue},
		{"no values", nil, 0, header.ErrValueCount},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got header.ContentLength
			err := got.Decode(c.vals)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("hdr.Decode(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.vals, err, c.wantErr, diff)
			}
			if c.wantErr == nil && got != c.want {
				t.Errorf("hdr.Decode(%q) = %v, want %v", c.vals, got, c.want)
			}
		})
	}
}

func TestContentLength_Format(t *testing.T) {
	t.Parallel()

	cases := []struct {
		fmt  string
		want string
	}{
		{"%s", "42"},
		{"%+s", "Content-Length: 42"},
		{"%q", `"42"`},
		{"%v", "42"},
		{"%d", "42"},
	}

	for _, c := range cases {
		t.Run(c.fmt, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.fmt, header.ContentLength(42)); got != c.want {
				t.Errorf("fmt.Sprintf(%q, hdr) = %q, want %q", c.fmt, got, c.want)
			}
		})
	}
}

func TestContentLength_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.ContentLength
		val  any
		want bool
	}{
		{"zero to nil", 0, nil, false},
		{"zero to nil ptr", 0, (*header.ContentLength)(nil), false},
		{"zero to zero", 0, header.ContentLength(0), true},
		{"not match", 123, header.ContentLength(456), false},
		{"match ptr", 123, ptr(header.ContentLength(123)), true},
		{"other type", 123, header.MaxForwards(123), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(%#v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}
