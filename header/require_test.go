package header_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/hdrmap"
	"github.com/ghettovoice/hdrmap/header"
)

type optionTagsHeader interface {
	header.Header
	Has(tag string) bool
	IsValid() bool
}

func TestOptionTags_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  optionTagsHeader
		want []hdrmap.RawValue
	}{
		{"require", header.Require{"100rel", "timer"}, []hdrmap.RawValue{"100rel", "timer"}},
		{"supported", header.Supported{"path"}, []hdrmap.RawValue{"path"}},
		{"unsupported", header.Unsupported{"foo", "bar"}, []hdrmap.RawValue{"foo", "bar"}},
		{"proxy require", header.ProxyRequire{"sec-agree"}, []hdrmap.RawValue{"sec-agree"}},
		{"empty", header.Supported{}, nil},
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

func TestOptionTags_TypedTryGet(t *testing.T) {
	t.Parallel()

	m := hdrmap.New(nil)
	m.Append("k", "100rel, timer").
		Append("Supported", "path").
		Append("Require", "100rel").
		Append("Proxy-Require", "bad tag").
		Append("Unsupported", "foo")

	sup, ok, err := header.TypedTryGet[header.Supported](m)
	if err != nil || !ok {
		t.Fatalf("header.TypedTryGet[header.Supported](m) = _, %v, %v, want true, nil", ok, err)
	}
	if diff := cmp.Diff(sup, header.Supported{"100rel", "timer", "path"}); diff != "" {
		t.Errorf("header.TypedTryGet[header.Supported](m) mismatch\ndiff (-got +want):\n%v", diff)
	}

	req, ok, err := header.TypedTryGet[header.Require](m)
	if err != nil || !ok || !req.Has("100REL") {
		t.Errorf("header.TypedTryGet[header.Require](m) = %v, %v, %v, want [100rel], true, nil", req, ok, err)
	}

	unsup, ok, err := header.TypedTryGet[header.Unsupported](m)
	if err != nil || !ok || !unsup.Equal(header.Unsupported{"FOO"}) {
		t.Errorf("header.TypedTryGet[header.Unsupported](m) = %v, %v, %v, want [foo], true, nil", unsup, ok, err)
	}

	_, _, err = header.TypedTryGet[header.ProxyRequire](m)
	if diff := cmp.Diff(err, error(header.ErrMalformedValue), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("header.TypedTryGet[header.ProxyRequire](m) error = %v, want %v", err, header.ErrMalformedValue)
	}
}

func TestOptionTags_EmptyValue(t *testing.T) {
	t.Parallel()

	m := hdrmap.New(nil)
	m.Set("Supported", "").
		Set("Require", "").
		Set("Unsupported", " ").
		Set("Proxy-Require", "")

	sup, ok, err := header.TypedTryGet[header.Supported](m)
	if err != nil || !ok {
		t.Fatalf("header.TypedTryGet[header.Supported](m) = _, %v, %v, want true, nil", ok, err)
	}
	if diff := cmp.Diff(sup, header.Supported{}); diff != "" {
		t.Errorf("header.TypedTryGet[header.Supported](m) mismatch\ndiff (-got +want):\n%v", diff)
	}

	cases := []struct {
		name string
		get  func() error
	}{
		{"require", func() error { _, _, err := header.TypedTryGet[header.Require](m); return err }},
		{"unsupported", func() error { _, _, err := header.TypedTryGet[header.Unsupported](m); return err }},
		{"proxy require", func() error { _, _, err := header.TypedTryGet[header.ProxyRequire](m); return err }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := c.get()
			if diff := cmp.Diff(err, error(header.ErrMalformedValue), cmpopts.EquateErrors()); diff != "" {
				t.Errorf("decode error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrMalformedValue, diff)
			}
		})
	}
}

func TestOptionTags_Format(t *testing.T) {
	t.Parallel()

	cases := []struct {
		fmt  string
		hdr  header.Header
		want string
	}{
		{"%s", header.Require{"a", "b"}, "a, b"},
		{"%+s", header.Supported{"a", "b"}, "Supported: a, b"},
		{"%q", header.Unsupported{"a"}, `"a"`},
		{"%v", header.ProxyRequire{"a", "b"}, "[a b]"},
	}

	for _, c := range cases {
		t.Run(c.fmt, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.fmt, c.hdr); got != c.want {
				t.Errorf("fmt.Sprintf(%q, hdr) = %q, want %q", c.fmt, got, c.want)
			}
		})
	}
}

func TestOptionTags_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  optionTagsHeader
		want bool
	}{
		{"empty", header.Require{}, true},
		{"tokens", header.Supported{"100rel", "timer"}, true},
		{"space", header.Unsupported{"a b"}, false},
		{"empty tag", header.ProxyRequire{""}, false},
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
