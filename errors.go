// errors.go: scan errors and caret-snippet rendering
//
// The scanner fails in exactly two ways, both reported as a *LexError:
// an UnknownCharacter that starts no token class, or an UnterminatedString
// whose closing quote never arrives. A failed scan returns no tokens.
//
// WrapErrorWithSource turns a *LexError into a readable, Python-style
// snippet with a caret under the offending column:
//
//	LEXICAL ERROR at 2:5: unknown token: '$'
//
//	   1 | (foo
//	   2 | bar $baz)
//	     |     ^
//
// Offsets are converted to 1-based line:col here, for display only; the
// scanner itself works purely with byte offsets.
package pure

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

/* ===========================
   PUBLIC API
   =========================== */

// ErrorKind classifies a LexError.
type ErrorKind uint8

const (
	UnknownCharacter ErrorKind = iota + 1
	UnterminatedString
)

var (
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrUnterminatedString = errors.New("unterminated string")
)

// LexError aborts a scan.
//
// Offset is the byte offset of the offending character for UnknownCharacter
// and of the opening quote for UnterminatedString. Char is set only for
// UnknownCharacter.
type LexError struct {
	Kind   ErrorKind
	Offset int
	Char   rune
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at offset %d: %s", e.Offset, e.Msg)
}

// Unwrap exposes the sentinel for the error kind, so errors.Is works.
func (e *LexError) Unwrap() error {
	switch e.Kind {
	case UnknownCharacter:
		return ErrUnknownCharacter
	case UnterminatedString:
		return ErrUnterminatedString
	default:
		return nil
	}
}

// WrapErrorWithSource returns an error whose message is a caret-annotated
// snippet of src when err carries a *LexError. The result still unwraps to
// err. Other errors are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with the source name added to the
// header ("LEXICAL ERROR in <name> at ...").
func WrapErrorWithName(err error, srcName string, src string) error {
	var le *LexError
	if !errors.As(err, &le) {
		return err
	}
	line, col := Position(src, le.Offset)
	return &snippetError{
		msg: prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, line, col, le.Msg),
		err: err,
	}
}

// Position converts a byte offset into a 1-based line and column. Columns
// count runes. Offsets past the end are clamped to the end of src.
func Position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, col
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

type snippetError struct {
	msg string
	err error
}

func (e *snippetError) Error() string { return e.msg }
func (e *snippetError) Unwrap() error { return e.err }

// prettyErrorStringLabeled builds a snippet with a header and a caret.
// It shows at most one previous and one next line when available.
// Coordinates are 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := strings.TrimSuffix(lines[line-1], "\r")

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, strings.TrimSuffix(lines[line-2], "\r"))
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, strings.TrimSuffix(lines[line], "\r"))
	}
	return b.String()
}
