package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avelorn/marklite/pkg/ast"
)

func TestBlankLinesEmitNothing(t *testing.T) {
	blocks := Parse("\n\n   \n\t\n")
	require.Empty(t, blocks)
}

func TestEveryNonBlankLineBecomesABlock(t *testing.T) {
	src := "# Title\n\nplain one\nplain two\n\n- item\n"
	blocks := Parse(src)
	require.Len(t, blocks, 4)
	require.Equal(t, ast.Heading{Level: 1, Text: "Title"}, blocks[0])
	require.Equal(t, ast.Paragraph{Text: "plain one"}, blocks[1])
	require.Equal(t, ast.Paragraph{Text: "plain two"}, blocks[2])
	require.Equal(t, ast.ListItem{Text: "item"}, blocks[3])
}

func TestHeadingLevels(t *testing.T) {
	blocks := Parse("# One\n## Two\n### Three")
	require.Equal(t, []ast.Block{
		ast.Heading{Level: 1, Text: "One"},
		ast.Heading{Level: 2, Text: "Two"},
		ast.Heading{Level: 3, Text: "Three"},
	}, blocks)
}

func TestHeadingPrecedence(t *testing.T) {
	// `### Title` must never be claimed by the `## ` rule.
	blocks := Parse("### Title")
	require.Equal(t, []ast.Block{ast.Heading{Level: 3, Text: "Title"}}, blocks)
}

func TestHashWithoutSpaceIsParagraph(t *testing.T) {
	blocks := Parse("#nospace")
	require.Equal(t, []ast.Block{ast.Paragraph{Text: "#nospace"}}, blocks)
}

func TestBlockquote(t *testing.T) {
	blocks := Parse("> quoted text")
	require.Equal(t, []ast.Block{ast.Blockquote{Text: "quoted text"}}, blocks)
}

func TestUnorderedItems(t *testing.T) {
	blocks := Parse("- dash item\n* star item\n  - indented")
	require.Equal(t, []ast.Block{
		ast.ListItem{Text: "dash item"},
		ast.ListItem{Text: "star item"},
		ast.ListItem{Text: "indented"},
	}, blocks)
}

func TestOrderedItemMultiDigit(t *testing.T) {
	blocks := Parse("12. Step")
	require.Equal(t, []ast.Block{ast.ListItem{Ordinal: "12.", Text: "Step"}}, blocks)
}

func TestOrderedItemNeedsTrailingSpace(t *testing.T) {
	// "3.14" is a number, not a list item.
	blocks := Parse("3.14 is pi")
	require.Equal(t, []ast.Block{ast.Paragraph{Text: "3.14 is pi"}}, blocks)
}

func TestImagePlaceholderForms(t *testing.T) {
	blocks := Parse("[IMAGE: a cell diagram]\n[image_placeholder: \"mitochondria\"]\n[Image:bare]")
	require.Equal(t, []ast.Block{
		ast.ImagePlaceholder{Caption: "a cell diagram"},
		ast.ImagePlaceholder{Caption: "mitochondria"},
		ast.ImagePlaceholder{Caption: "bare"},
	}, blocks)
}

func TestStandardImageLine(t *testing.T) {
	blocks := Parse("![a graph](https://example.com/g.png)")
	require.Equal(t, []ast.Block{ast.Image{Alt: "a graph", URL: "https://example.com/g.png"}}, blocks)
}

func TestImageWithTrailingTextIsParagraph(t *testing.T) {
	blocks := Parse("![a graph](https://example.com/g.png) trailing")
	require.Len(t, blocks, 1)
	require.IsType(t, ast.Paragraph{}, blocks[0])
}

func TestSingleLineMathBlock(t *testing.T) {
	blocks := Parse("$$E = mc^2$$")
	require.Equal(t, []ast.Block{ast.MathBlock{TeX: "E = mc^2"}}, blocks)
}

func TestSingleLineMathBlockKeepsInteriorVerbatim(t *testing.T) {
	blocks := Parse("$$ x $$")
	require.Equal(t, []ast.Block{ast.MathBlock{TeX: " x "}}, blocks)
}

func TestMultiLineMathBlock(t *testing.T) {
	blocks := Parse("$$\n\\int_0^1 x\\,dx\n= \\frac{1}{2}\n$$\nafter")
	require.Equal(t, []ast.Block{
		ast.MathBlock{TeX: "\\int_0^1 x\\,dx\n= \\frac{1}{2}"},
		ast.Paragraph{Text: "after"},
	}, blocks)
}

func TestMathBlockTerminatorPrefixKept(t *testing.T) {
	blocks := Parse("$$\na + b$$")
	require.Equal(t, []ast.Block{ast.MathBlock{TeX: "a + b"}}, blocks)
}

func TestUnterminatedMathBlockConsumesToEnd(t *testing.T) {
	blocks := Parse("$$\nE=mc^2")
	require.Equal(t, []ast.Block{ast.MathBlock{TeX: "E=mc^2"}}, blocks)
}

func TestBareDelimitersMakeEmptyMathBlock(t *testing.T) {
	blocks := Parse("$$")
	require.Equal(t, []ast.Block{ast.MathBlock{}}, blocks)
}

func TestTableRoundTrip(t *testing.T) {
	blocks := Parse("| A | B |\n|---|---|\n| 1 | 2 |")
	require.Len(t, blocks, 1)

	tb, ok := blocks[0].(ast.Table)
	require.True(t, ok)

	header, hasHeader := tb.HeaderRow()
	require.True(t, hasHeader)
	require.Equal(t, []string{"A", "B"}, header)
	require.Equal(t, [][]string{{"1", "2"}}, tb.BodyRows())
}

func TestTableRunEndsAtNonPipeLine(t *testing.T) {
	blocks := Parse("| a |\n| b |\nplain")
	require.Len(t, blocks, 2)
	require.Equal(t, ast.Table{Rows: []string{"| a |", "| b |"}}, blocks[0])
	require.Equal(t, ast.Paragraph{Text: "plain"}, blocks[1])
}

func TestParagraphFallbackKeepsLeadingContent(t *testing.T) {
	blocks := Parse("  indented text   ")
	require.Equal(t, []ast.Block{ast.Paragraph{Text: "  indented text"}}, blocks)
}

func TestParagraphClassificationIdempotent(t *testing.T) {
	blocks := Parse("just some prose")
	require.Len(t, blocks, 1)
	p := blocks[0].(ast.Paragraph)

	again := Parse(p.Text)
	require.Equal(t, blocks, again)
}

func TestLiteralNewlineEscapesNormalized(t *testing.T) {
	blocks := Parse(`# Title\n\nbody`)
	require.Equal(t, []ast.Block{
		ast.Heading{Level: 1, Text: "Title"},
		ast.Paragraph{Text: "body"},
	}, blocks)
}

func TestCRLFNormalized(t *testing.T) {
	blocks := Parse("# Title\r\nbody")
	require.Equal(t, []ast.Block{
		ast.Heading{Level: 1, Text: "Title"},
		ast.Paragraph{Text: "body"},
	}, blocks)
}

func TestDocumentWrapsNormalizedSource(t *testing.T) {
	doc := Document("a\r\nb")
	require.Equal(t, "a\nb", doc.Source)
	require.Len(t, doc.Blocks, 2)
	require.NotEmpty(t, doc.Hash())
}
