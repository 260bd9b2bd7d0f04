package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avelorn/marklite/pkg/ast"
)

func TestInlineEmptyLine(t *testing.T) {
	require.Empty(t, ParseInline(""))
}

func TestInlinePlainText(t *testing.T) {
	segs := ParseInline("nothing special here")
	require.Equal(t, []ast.Inline{ast.Text{Content: "nothing special here"}}, segs)
}

func TestInlineCompositionOrder(t *testing.T) {
	segs := ParseInline("**Bold** and $x^2$ and [link](http://x)")
	require.Equal(t, []ast.Inline{
		ast.Bold{Content: "Bold"},
		ast.Text{Content: " and "},
		ast.Math{TeX: "x^2"},
		ast.Text{Content: " and "},
		ast.Link{Label: "link", URL: "http://x"},
	}, segs)
}

func TestInlineMathClaimsFirst(t *testing.T) {
	// Math wins over link syntax inside its span.
	segs := ParseInline("$[a](b)$")
	require.Equal(t, []ast.Inline{ast.Math{TeX: "[a](b)"}}, segs)
}

func TestInlineAdjacentMathSpans(t *testing.T) {
	segs := ParseInline("$a$$b$")
	require.Equal(t, []ast.Inline{ast.Math{TeX: "a"}, ast.Math{TeX: "b"}}, segs)
}

func TestInlineEmptyMathNotASpan(t *testing.T) {
	segs := ParseInline("cost: $$ exactly")
	require.Equal(t, []ast.Inline{ast.Text{Content: "cost: $$ exactly"}}, segs)
}

func TestInlineLinkInsideBoldFreeText(t *testing.T) {
	segs := ParseInline("see [the docs](https://example.com) now")
	require.Equal(t, []ast.Inline{
		ast.Text{Content: "see "},
		ast.Link{Label: "the docs", URL: "https://example.com"},
		ast.Text{Content: " now"},
	}, segs)
}

func TestInlineBoldNonGreedy(t *testing.T) {
	segs := ParseInline("**a** mid **b**")
	require.Equal(t, []ast.Inline{
		ast.Bold{Content: "a"},
		ast.Text{Content: " mid "},
		ast.Bold{Content: "b"},
	}, segs)
}

func TestInlineUnclosedBoldIsPlain(t *testing.T) {
	segs := ParseInline("**open")
	require.Equal(t, []ast.Inline{ast.Text{Content: "**open"}}, segs)
}

func TestInlineSegmentsReconstructLine(t *testing.T) {
	line := "**Bold** then $e^x$ then [l](u) tail"
	var got string
	for _, s := range ParseInline(line) {
		switch s := s.(type) {
		case ast.Text:
			got += s.Content
		case ast.Bold:
			got += "**" + s.Content + "**"
		case ast.Math:
			got += "$" + s.TeX + "$"
		case ast.Link:
			got += "[" + s.Label + "](" + s.URL + ")"
		}
	}
	require.Equal(t, line, got)
}
