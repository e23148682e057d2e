// Package grammar validates and splits stored header values
// using ABNF rules from RFC 3261.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/hdrmap/internal/constraints"
)

type Error string

func (e Error) Error() string { return string(e) }

func matchAll[T constraints.Byteseq](op abnf.Operator, s T) bool {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsToken checks whether s is an RFC 3261 token.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	return matchAll(token, s)
}

// IsCallID checks whether s is a Call-ID value: word [ "@" word ].
func IsCallID[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	return matchAll(callID, s)
}

// IsText checks whether s contains only TEXT-UTF8 characters, i.e. has no control characters
// besides HTAB. Empty input is valid text.
func IsText[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	return matchAll(text, s)
}
