package grammar

import "github.com/ghettovoice/abnf"

// Core rules of RFC 5234 and the subset of RFC 3261 rules
// needed to validate and split stored header values.

func byteLit(key string, b byte) abnf.Operator { return abnf.Literal(key, []byte{b}) }

var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	wsp   = abnf.Alt("WSP", byteLit("SP", ' '), byteLit("HTAB", '\t'))
	sws   = abnf.Repeat0Inf("SWS", wsp)
	lws   = abnf.Repeat1Inf("LWS", wsp)
	comma = abnf.Concat("COMMA", sws, byteLit(",", ','), sws)

	tokenChar = abnf.Alt(
		"token-char",
		alpha,
		digit,
		byteLit("-", '-'),
		byteLit(".", '.'),
		byteLit("!", '!'),
		byteLit("%", '%'),
		byteLit("*", '*'),
		byteLit("_", '_'),
		byteLit("+", '+'),
		byteLit("`", '`'),
		byteLit("'", '\''),
		byteLit("~", '~'),
	)
	token = abnf.Repeat1Inf("token", tokenChar)

	tokenList = abnf.Concat(
		"token-list",
		token,
		abnf.Repeat0Inf("*(COMMA token)", abnf.Concat("COMMA token", comma, token)),
	)

	wordChar = abnf.Alt(
		"word-char",
		tokenChar,
		byteLit("(", '('),
		byteLit(")", ')'),
		byteLit("<", '<'),
		byteLit(">", '>'),
		byteLit(":", ':'),
		byteLit("\\", '\\'),
		byteLit("DQUOTE", '"'),
		byteLit("/", '/'),
		byteLit("[", '['),
		byteLit("]", ']'),
		byteLit("?", '?'),
		byteLit("{", '{'),
		byteLit("}", '}'),
	)
	word   = abnf.Repeat1Inf("word", wordChar)
	callID = abnf.Alt(
		"callid",
		abnf.Concat("word \"@\" word", word, byteLit("@", '@'), word),
		word,
	)

	cseq = abnf.Concat(
		"CSeq",
		abnf.Repeat1Inf("seq-num", digit),
		lws,
		abnf.Concat("Method", token),
	)

	textChar = abnf.Alt(
		"TEXT-UTF8char",
		abnf.Range("%x20-7E", []byte{0x20}, []byte{0x7E}),
		abnf.Range("UTF8-NONASCII", []byte{0x80}, []byte{0xFF}),
		byteLit("HTAB", '\t'),
	)
	text = abnf.Repeat0Inf("TEXT-UTF8-TRIM", textChar)
)
