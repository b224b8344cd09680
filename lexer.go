// lexer.go: single-pass scanner turning Pure source text into tokens.
package pure

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Radix tags how the digit text of a Number lexeme is to be read later on.
type Radix uint8

const (
	NoRadix Radix = iota // non-number lexemes
	Binary
	Decimal
	Hexadecimal
)

// Base returns the numeral base (2, 10 or 16), or 0 for NoRadix.
func (r Radix) Base() int {
	switch r {
	case Binary:
		return 2
	case Decimal:
		return 10
	case Hexadecimal:
		return 16
	default:
		return 0
	}
}

// Kind is the variant of a Lexeme.
type Kind uint8

const (
	// Fixed-width punctuation
	LeftParen    Kind = iota // "("
	RightParen               // ")"
	LeftBracket              // "["
	RightBracket             // "]"
	Dot                      // "."

	// Text-carrying
	Identifier
	Number
	String
)

func (k Kind) fixed() bool { return k <= Dot }

// Lexeme is the classified content of a token, independent of where it sits
// in the source. Text is a substring of the scanned source; for String it
// excludes the delimiting quotes and keeps escapes unresolved.
type Lexeme struct {
	Kind  Kind
	Text  string
	Radix Radix
}

// Punct returns the lexeme for one of the fixed-width kinds.
func Punct(k Kind) Lexeme { return Lexeme{Kind: k} }

func Ident(text string) Lexeme { return Lexeme{Kind: Identifier, Text: text} }

func Num(text string, r Radix) Lexeme { return Lexeme{Kind: Number, Text: text, Radix: r} }

func Str(text string) Lexeme { return Lexeme{Kind: String, Text: text} }

// Len is the display length: 1 for punctuation, the text length otherwise.
func (lx Lexeme) Len() int {
	if lx.Kind.fixed() {
		return 1
	}
	return len(lx.Text)
}

// Width is the number of source bytes the lexeme occupies. It differs from
// Len only for strings, whose quotes are part of the source but not of Text.
func (lx Lexeme) Width() int {
	if lx.Kind == String {
		return len(lx.Text) + 2
	}
	return lx.Len()
}

// Token is a lexeme plus the half-open byte range [Start, End) it was read
// from. Tokens are values; the source is shared, never copied.
type Token struct {
	source string
	lexeme Lexeme
	start  int
}

func newToken(src string, lx Lexeme, start int) Token {
	if start < 0 || start+lx.Width() > len(src) {
		panic(fmt.Sprintf("pure: token %v at %d out of range for source of length %d", lx, start, len(src)))
	}
	return Token{source: src, lexeme: lx, start: start}
}

func (t Token) Source() string { return t.source }
func (t Token) Lexeme() Lexeme { return t.lexeme }
func (t Token) Start() int     { return t.start }
func (t Token) End() int       { return t.start + t.lexeme.Width() }

// Text returns source[Start:End], delimiters included.
func (t Token) Text() string { return t.source[t.start:t.End()] }

// cancelCheckInterval is how many loop iterations pass between ctx checks.
const cancelCheckInterval = 256

// Lexer scans a source string into tokens. A Lexer may be reused: every
// Scan starts over from the beginning of the source.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans src in one pass. On an unknown character or an
// unterminated string it returns a *LexError and no tokens.
func Tokenize(src string) ([]Token, error) {
	return NewLexer(src).Scan()
}

// TokenizeContext is Tokenize with cancellation checked between tokens.
// A cancelled scan returns ctx.Err() and no tokens.
func TokenizeContext(ctx context.Context, src string) ([]Token, error) {
	return NewLexer(src).scan(ctx)
}

// MustTokenize is like Tokenize but panics with the *LexError.
func MustTokenize(src string) []Token {
	toks, err := Tokenize(src)
	if err != nil {
		panic(err)
	}
	return toks
}

// Scan tokenizes the entire source and returns the tokens in source order.
func (l *Lexer) Scan() ([]Token, error) {
	return l.scan(context.Background())
}

func (l *Lexer) scan(ctx context.Context) ([]Token, error) {
	l.start, l.cur, l.tokens = 0, 0, nil

	for n := 0; !l.isAtEnd(); n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		l.start = l.cur
		ch, _ := l.peek()

		switch {
		case ch == '(':
			l.advance()
			l.addToken(Punct(LeftParen))
		case ch == ')':
			l.advance()
			l.addToken(Punct(RightParen))
		case ch == '[':
			l.advance()
			l.addToken(Punct(LeftBracket))
		case ch == ']':
			l.advance()
			l.addToken(Punct(RightBracket))
		case ch == '.':
			l.advance()
			l.addToken(Punct(Dot))
		case isAlpha(ch):
			l.addToken(l.scanIdentifier())
		case isDigit(ch):
			l.addToken(l.scanNumber())
		case ch == '#':
			l.skipComment()
		case ch == '"':
			lx, err := l.scanString()
			if err != nil {
				return nil, err
			}
			l.addToken(lx)
		case isSpace(ch):
			l.advance()
		default:
			return nil, l.unknownCharacter()
		}
	}
	return l.tokens, nil
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	return ch, true
}

// skipWhile advances past every byte accepted by pred.
func (l *Lexer) skipWhile(pred func(byte) bool) {
	for {
		b, ok := l.peek()
		if !ok || !pred(b) {
			return
		}
		l.cur++
	}
}

// text returns the source consumed for the current token.
func (l *Lexer) text() string { return l.src[l.start:l.cur] }

func (l *Lexer) addToken(lx Lexeme) {
	l.tokens = append(l.tokens, newToken(l.src, lx, l.start))
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isBinaryDigit(b byte) bool  { return b == '0' || b == '1' || b == '_' }
func isDecimalDigit(b byte) bool { return isDigit(b) || b == '_' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || b == '_'
}

// ----- scanners -----

// scanIdentifier reads [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) scanIdentifier() Lexeme {
	l.advance()
	l.skipWhile(isAlphaNum)
	return Ident(l.text())
}

// scanNumber reads a numeric literal. The radix is fixed by at most the two
// bytes after the first digit: "0b" and "0x" select binary and hexadecimal,
// a lone "0" is complete, everything else is decimal. Digit runs are taken
// greedily and underscores are accepted anywhere; validating the literal is
// left to whoever converts it.
func (l *Lexer) scanNumber() Lexeme {
	first, _ := l.advance()
	if first == '0' {
		b, ok := l.peek()
		switch {
		case ok && b == 'b':
			l.advance()
			l.skipWhile(isBinaryDigit)
			return Num(l.text(), Binary)
		case ok && b == 'x':
			l.advance()
			l.skipWhile(isHexDigit)
			return Num(l.text(), Hexadecimal)
		case ok && (isDecimalDigit(b) || b == '.'):
			// decimal with a leading zero
		default:
			return Num(l.text(), Decimal)
		}
	}
	return l.finishDecimal()
}

// finishDecimal reads the integer part, then at most one '.' and the
// fractional part. A second '.' ends the literal.
func (l *Lexer) finishDecimal() Lexeme {
	inFraction := false
	for {
		l.skipWhile(isDecimalDigit)
		b, ok := l.peek()
		if !ok || b != '.' || inFraction {
			return Num(l.text(), Decimal)
		}
		l.advance()
		inFraction = true
	}
}

// scanString reads a double-quoted literal. A backslash takes the next byte
// with it unconditionally; nothing is unescaped.
func (l *Lexer) scanString() (Lexeme, error) {
	l.advance() // opening quote
	for {
		ch, ok := l.advance()
		if !ok {
			return Lexeme{}, l.unterminatedString()
		}
		switch ch {
		case '\\':
			if _, ok := l.advance(); !ok {
				return Lexeme{}, l.unterminatedString()
			}
		case '"':
			return Str(l.src[l.start+1 : l.cur-1]), nil
		}
	}
}

// skipComment eats '#' up to and including the next newline, or to EOF.
func (l *Lexer) skipComment() {
	for {
		ch, ok := l.advance()
		if !ok || ch == '\n' {
			return
		}
	}
}

// ----- errors -----

func (l *Lexer) unknownCharacter() error {
	r, _ := utf8.DecodeRuneInString(l.src[l.cur:])
	return &LexError{
		Kind:   UnknownCharacter,
		Offset: l.cur,
		Char:   r,
		Msg:    fmt.Sprintf("unknown token: %q", r),
	}
}

func (l *Lexer) unterminatedString() error {
	return &LexError{
		Kind:   UnterminatedString,
		Offset: l.start,
		Msg:    "string was not terminated",
	}
}
