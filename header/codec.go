package header

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/grammar"
	"github.com/ghettovoice/hdrmap/internal/util"
)

// singleValue returns the only stored value of a header that may appear once.
func singleValue(name Name, vals []RawValue) (RawValue, error) {
	if len(vals) != 1 {
		return "", errtrace.Wrap(newValueCountError(name, vals, "1"))
	}
	return util.TrimSP(vals[0]), nil
}

func decodeUint(name Name, vals []RawValue, bitSize int) (uint64, error) {
	v, err := singleValue(name, vals)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(parseUint(name, vals, v, bitSize))
}

func parseUint(name Name, vals []RawValue, v RawValue, bitSize int) (uint64, error) {
	// ParseUint alone accepts "+1" and underscores in some bases, header values are plain digits
	if v == "" || strings.TrimLeft(string(v), "0123456789") != "" {
		return 0, errtrace.Wrap(NewDecodeError(name, vals, "%q is not a decimal number", v))
	}
	n, err := strconv.ParseUint(string(v), 10, bitSize)
	if err != nil {
		return 0, errtrace.Wrap(NewDecodeError(name, vals, err))
	}
	return n, nil
}

func encodeUint(sink Sink, n uint64) {
	sink.Push(RawValue(strconv.FormatUint(n, 10)))
}

// decodeTokens collects tokens from all values,
// each value may hold a comma-separated list of tokens.
// Blank values hold no tokens when allowBlank is set, otherwise they are malformed.
func decodeTokens(name Name, vals []RawValue, allowBlank bool) ([]string, error) {
	toks := make([]string, 0, len(vals))
	for _, v := range vals {
		v = util.TrimSP(v)
		if v == "" && allowBlank {
			continue
		}
		vtoks, err := grammar.SplitTokenList(v)
		if err != nil {
			return nil, errtrace.Wrap(NewDecodeError(name, vals, err))
		}
		toks = append(toks, vtoks...)
	}
	return toks, nil
}

// decodeText returns the only stored value of a free-text header.
func decodeText(name Name, vals []RawValue) (string, error) {
	v, err := singleValue(name, vals)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if !grammar.IsText(v) {
		return "", errtrace.Wrap(NewDecodeError(name, vals, "control characters in text"))
	}
	return string(v), nil
}
