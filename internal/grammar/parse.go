package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/hdrmap/internal/constraints"
	"github.com/ghettovoice/hdrmap/internal/errorutil"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func parse[T constraints.Byteseq](op abnf.Operator, s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// ParseTokenList parses a comma-separated list of tokens (1#token).
func ParseTokenList[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(tokenList, s))
}

// ParseCSeq parses a CSeq header value: 1*DIGIT LWS Method.
func ParseCSeq[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(cseq, s))
}

// SplitTokenList parses s as a token list and returns the tokens in order.
func SplitTokenList[T constraints.Byteseq](s T) ([]string, error) {
	node, err := ParseTokenList(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	tokNodes := node.GetNodes("token")
	toks := make([]string, len(tokNodes))
	for i, n := range tokNodes {
		toks[i] = n.String()
	}
	return toks, nil
}
