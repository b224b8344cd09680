// spans.go: byte spans of tokens and of the input the scanner skips.
//
// A scan covers its input exactly: every byte belongs either to one token or
// to one skipped span (whitespace and comments). Gaps recovers the skipped
// spans from a token list; CheckCoverage verifies the whole partition.
package pure

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// Span represents a half-open byte interval [StartByte, EndByte) in the
// source text. EndByte is exclusive.
type Span struct {
	StartByte int // inclusive
	EndByte   int // exclusive
}

// Len returns the number of bytes in the span.
func (sp Span) Len() int { return sp.EndByte - sp.StartByte }

// Text returns src[StartByte:EndByte], or "" if the span does not fit src.
func (sp Span) Text(src string) string {
	if sp.StartByte < 0 || sp.EndByte > len(src) || sp.StartByte > sp.EndByte {
		return ""
	}
	return src[sp.StartByte:sp.EndByte]
}

// Span returns the source range of the token, delimiters included.
func (t Token) Span() Span {
	return Span{StartByte: t.start, EndByte: t.End()}
}

// Gaps returns the non-empty spans of src not covered by any token, in
// source order. For a successful scan these are exactly the whitespace and
// comment runs. tokens must be sorted by start and must not overlap.
func Gaps(src string, tokens []Token) []Span {
	var out []Span
	pos := 0
	for _, t := range tokens {
		if t.Start() > pos {
			out = append(out, Span{StartByte: pos, EndByte: t.Start()})
		}
		pos = t.End()
	}
	if pos < len(src) {
		out = append(out, Span{StartByte: pos, EndByte: len(src)})
	}
	return out
}

// CheckCoverage reports the first violation of the scan invariants: each
// token is drawn from src and lies within it, starts strictly increase,
// tokens do not overlap, and every gap between them holds only whitespace
// or comments.
func CheckCoverage(src string, tokens []Token) error {
	pos := 0
	for i, t := range tokens {
		if t.Source() != src {
			return fmt.Errorf("token %d (%v) was not scanned from this source", i, t.Lexeme())
		}
		if t.Start() < pos {
			return fmt.Errorf("token %d (%v) at %d overlaps the previous token ending at %d", i, t.Lexeme(), t.Start(), pos)
		}
		if t.End() > len(src) {
			return fmt.Errorf("token %d (%v) ends at %d past source length %d", i, t.Lexeme(), t.End(), len(src))
		}
		if err := checkSkipped(src, Span{StartByte: pos, EndByte: t.Start()}); err != nil {
			return err
		}
		pos = t.End()
	}
	return checkSkipped(src, Span{StartByte: pos, EndByte: len(src)})
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
//                                 PRIVATE
////////////////////////////////////////////////////////////////////////////////

// checkSkipped verifies that a gap consists of whitespace and complete
// comments only.
func checkSkipped(src string, sp Span) error {
	s := sp.Text(src)
	for i := 0; i < len(s); i++ {
		switch {
		case isSpace(s[i]):
		case s[i] == '#':
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				if sp.EndByte != len(src) {
					return fmt.Errorf("comment at %d is cut short by a token at %d", sp.StartByte+i, sp.EndByte)
				}
				return nil
			}
			i += nl
		default:
			return fmt.Errorf("byte %q at %d is neither in a token nor skipped", s[i], sp.StartByte+i)
		}
	}
	return nil
}
