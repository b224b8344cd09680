package pure

import (
	"fmt"
	"testing"
)

func Test_Printer_Lexeme(t *testing.T) {
	cases := []struct {
		lx   Lexeme
		want string
	}{
		{Punct(LeftParen), "LeftParen"},
		{Punct(RightParen), "RightParen"},
		{Punct(LeftBracket), "LeftBracket"},
		{Punct(RightBracket), "RightBracket"},
		{Punct(Dot), "Dot"},
		{Ident("abc"), `Identifier("abc")`},
		{Num("0b1_0", Binary), `Number("0b1_0", Binary)`},
		{Num("4.3_", Decimal), `Number("4.3_", Decimal)`},
		{Num("0x2F", Hexadecimal), `Number("0x2F", Hexadecimal)`},
		{Str(`a\\bc`), `String("a\\\\bc")`},
		{Str("1\n"), `String("1\n")`},
	}
	for _, c := range cases {
		if got := c.lx.String(); got != c.want {
			t.Fatalf("String() = %s, want %s", got, c.want)
		}
		if got := fmt.Sprintf("%#v", c.lx); got != c.want {
			t.Fatalf("%%#v = %s, want %s", got, c.want)
		}
	}
}

func Test_Printer_Names(t *testing.T) {
	if Kind(42).String() != "Kind(42)" {
		t.Fatalf("unknown kind: %s", Kind(42))
	}
	if Radix(9).String() != "Radix(9)" || NoRadix.String() != "NoRadix" {
		t.Fatalf("radix names wrong")
	}
	if Identifier.String() != "Identifier" || String.String() != "String" {
		t.Fatalf("kind names wrong")
	}
}

func Test_Printer_Token_And_List(t *testing.T) {
	ts := toks(t, `(x "y")`)
	if got := ts[2].String(); got != `String("y")@[3,6)` {
		t.Fatalf("token string %s", got)
	}
	want := `[LeftParen, Identifier("x"), String("y"), RightParen]`
	if got := FormatLexemes(ts); got != want {
		t.Fatalf("got %s\nwant %s", got, want)
	}
	if FormatLexemes(nil) != "[]" {
		t.Fatalf("empty list")
	}
}
