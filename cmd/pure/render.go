package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	pure "github.com/tmazeika/pure"
)

// palette holds the styles for one output stream. Colors are dropped
// automatically when the stream is not a terminal.
type palette struct {
	punct  lipgloss.Style
	ident  lipgloss.Style
	number lipgloss.Style
	str    lipgloss.Style
	dim    lipgloss.Style
	err    lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		punct:  r.NewStyle().Foreground(lipgloss.Color("245")),
		ident:  r.NewStyle().Foreground(lipgloss.Color("12")),
		number: r.NewStyle().Foreground(lipgloss.Color("13")),
		str:    r.NewStyle().Foreground(lipgloss.Color("10")),
		dim:    r.NewStyle().Faint(true),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (p palette) lexeme(lx pure.Lexeme) string {
	switch lx.Kind {
	case pure.Identifier:
		return p.ident.Render(lx.String())
	case pure.Number:
		return p.number.Render(lx.String())
	case pure.String:
		return p.str.Render(lx.String())
	default:
		return p.punct.Render(lx.String())
	}
}

// lexemeList renders tokens the way the REPL prints a line:
//
//	[Identifier("abc"), Number("3.4", Decimal)]
//
// With spans set, each lexeme is followed by its [start,end) range.
func (p palette) lexemeList(toks []pure.Token, spans bool) string {
	parts := make([]string, 0, len(toks))
	for _, t := range toks {
		s := p.lexeme(t.Lexeme())
		if spans {
			s += p.dim.Render(fmt.Sprintf("@[%d,%d)", t.Start(), t.End()))
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// failure styles an error message line by line, so multi-line snippets are
// not padded to a common width.
func (p palette) failure(err error) string {
	lines := strings.Split(strings.TrimRight(err.Error(), "\n"), "\n")
	for i, ln := range lines {
		lines[i] = p.err.Render(ln)
	}
	return strings.Join(lines, "\n")
}

// writeText prints one token per line, optionally interleaved with the
// skipped spans:
//
//	== main.pure ==
//	     0..3      Identifier("abc")
//	     3..4      skip " "
func writeText(w io.Writer, p palette, res lexResult, gaps bool) {
	if res.name != "" {
		fmt.Fprintf(w, "== %s ==\n", res.name)
	}

	var skipped []pure.Span
	if gaps {
		skipped = pure.Gaps(res.src, res.toks)
	}

	ti, gi := 0, 0
	for ti < len(res.toks) || gi < len(skipped) {
		if gi < len(skipped) && (ti == len(res.toks) || skipped[gi].StartByte < res.toks[ti].Start()) {
			sp := skipped[gi]
			fmt.Fprintf(w, "%6d..%-6d %s\n", sp.StartByte, sp.EndByte, p.dim.Render(fmt.Sprintf("skip %q", sp.Text(res.src))))
			gi++
			continue
		}
		t := res.toks[ti]
		fmt.Fprintf(w, "%6d..%-6d %s\n", t.Start(), t.End(), p.lexeme(t.Lexeme()))
		ti++
	}
}

type outToken struct {
	File  string `json:"file,omitempty"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Radix string `json:"radix,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func toOutToken(file string, t pure.Token) outToken {
	lx := t.Lexeme()
	out := outToken{
		File:  file,
		Kind:  lx.Kind.String(),
		Text:  lx.Text,
		Start: t.Start(),
		End:   t.End(),
	}
	if lx.Kind == pure.Number {
		out.Radix = lx.Radix.String()
	}
	return out
}
