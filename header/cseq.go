package header

import (
	"math"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/grammar"
	"github.com/ghettovoice/hdrmap/internal/util"
)

// CSeq represents the CSeq header field.
// The CSeq header field serves as a way to identify and order transactions.
type CSeq struct {
	SeqNum uint
	Method RequestMethod
}

// CanonicName returns the canonical name of the header.
func (*CSeq) CanonicName() Name { return "CSeq" }

// CompactName returns the compact name of the header (CSeq has no compact form).
func (*CSeq) CompactName() Name { return "CSeq" }

// Encode pushes "seq method".
// Sequence numbers above 2**32-1 are clamped to it.
func (hdr *CSeq) Encode(sink Sink) {
	if hdr == nil {
		return
	}
	sink.Push(RawValue(hdr.String()))
}

// Decode parses the only stored value.
// The sequence number must fit into 32 bits.
func (hdr *CSeq) Decode(vals []RawValue) error {
	name := hdr.CanonicName()
	v, err := singleValue(name, vals)
	if err != nil {
		return errtrace.Wrap(err)
	}

	node, err := grammar.ParseCSeq(v)
	if err != nil {
		return errtrace.Wrap(NewDecodeError(name, vals, err))
	}
	seqNode, ok1 := node.GetNode("seq-num")
	methNode, ok2 := node.GetNode("Method")
	if !ok1 || !ok2 {
		return errtrace.Wrap(NewDecodeError(name, vals, grammar.ErrMalformedInput))
	}

	seq, err := strconv.ParseUint(seqNode.String(), 10, 32)
	if err != nil {
		return errtrace.Wrap(NewDecodeError(name, vals, err))
	}
	hdr.SeqNum = uint(seq)
	hdr.Method = RequestMethod(methNode.String())
	return nil
}

func (hdr *CSeq) String() string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(strconv.FormatUint(min(uint64(hdr.SeqNum), math.MaxUint32), 10))
	sb.WriteByte(' ')
	sb.WriteString(string(hdr.Method))
	return sb.String()
}

// Clone returns a copy of the header.
func (hdr *CSeq) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *CSeq) Equal(val any) bool {
	var other *CSeq
	switch v := val.(type) {
	case CSeq:
		other = &v
	case *CSeq:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.SeqNum == other.SeqNum && hdr.Method.Equal(other.Method)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *CSeq) IsValid() bool {
	return hdr != nil && uint64(hdr.SeqNum) <= math.MaxUint32 && hdr.Method.IsValid()
}
