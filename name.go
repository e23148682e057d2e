package hdrmap

import (
	"net/textproto"
	"sync/atomic"

	"github.com/go4org/hashtriemap"

	"github.com/ghettovoice/hdrmap/internal/grammar"
	"github.com/ghettovoice/hdrmap/internal/util"
)

// Name represents a header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"c":                "Content-Type",
	"e":                "Content-Encoding",
	"f":                "From",
	"i":                "Call-ID",
	"k":                "Supported",
	"l":                "Content-Length",
	"m":                "Contact",
	"s":                "Subject",
	"t":                "To",
	"v":                "Via",
	"Call-Id":          "Call-ID",
	"Cseq":             "CSeq",
	"Mime-Version":     "MIME-Version",
	"Www-Authenticate": "WWW-Authenticate",
}

// Canonical names are looked up on every map access, the cache keeps
// the result for raw spellings seen so far. Arbitrary input must not grow
// it without bound.
const maxCachedNames = 4096

var (
	canonNames    hashtriemap.HashTrieMap[string, Name]
	canonNamesLen atomic.Int64
)

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "accept-encoding" is "Accept-Encoding".
// Also, any compact name is converted to its full canonical form. For example, "l" converts to "Content-Length".
func CanonicName[T ~string](name T) Name {
	if n, ok := canonNames.Load(string(name)); ok {
		return n
	}

	n := canonicName(string(name))
	if canonNamesLen.Load() < maxCachedNames {
		if _, loaded := canonNames.LoadOrStore(string(name), n); !loaded {
			canonNamesLen.Add(1)
		}
	}
	return n
}

func canonicName(name string) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[name]; ok {
		return n
	}

	name = textproto.CanonicalMIMEHeaderKey(name)
	if n, ok := hdrNames[name]; ok {
		return n
	}
	return Name(name)
}

// RawValue is a single stored header value in its textual form.
type RawValue string

func (v RawValue) String() string { return string(v) }

// IsValid checks whether the value has no control characters except HTAB,
// so it can be rendered on a single header line.
func (v RawValue) IsValid() bool { return grammar.IsText(v) }
