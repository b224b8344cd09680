// printer.go: debug rendering of lexemes and tokens.
//
// The format mirrors how the lexemes are written in tests:
//
//	LeftParen
//	Identifier("abc")
//	Number("0b1_0", Binary)
//	String("a\\bc")
//
// Text is always quoted with Go escaping, so the rendering is unambiguous
// even for strings holding quotes, backslashes or newlines.
package pure

import (
	"fmt"
	"strconv"
	"strings"
)

var kindNames = [...]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Dot:          "Dot",
	Identifier:   "Identifier",
	Number:       "Number",
	String:       "String",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (r Radix) String() string {
	switch r {
	case NoRadix:
		return "NoRadix"
	case Binary:
		return "Binary"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return fmt.Sprintf("Radix(%d)", int(r))
	}
}

func (lx Lexeme) String() string {
	switch lx.Kind {
	case Identifier, String:
		return lx.Kind.String() + "(" + strconv.Quote(lx.Text) + ")"
	case Number:
		return "Number(" + strconv.Quote(lx.Text) + ", " + lx.Radix.String() + ")"
	default:
		return lx.Kind.String()
	}
}

// GoString makes %#v print the same form as %v.
func (lx Lexeme) GoString() string { return lx.String() }

// String renders the lexeme followed by its [start,end) range.
func (t Token) String() string {
	return fmt.Sprintf("%s@[%d,%d)", t.lexeme, t.start, t.End())
}

// FormatLexemes renders the lexemes of tokens as a bracketed list:
//
//	[Identifier("x"), Dot, Number("1", Decimal)]
func FormatLexemes(tokens []Token) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.lexeme.String())
	}
	b.WriteByte(']')
	return b.String()
}
