package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRowDropsEdgeCells(t *testing.T) {
	cells := SplitRow("| a | b |")
	require.Equal(t, []string{"a", "b"}, cells)
}

func TestSplitRowBareRow(t *testing.T) {
	cells := SplitRow("a | b | c")
	require.Equal(t, []string{"a", "b", "c"}, cells)
}

func TestHeaderRowWithSeparator(t *testing.T) {
	tb := Table{Rows: []string{"| A | B |", "|---|---|", "| 1 | 2 |"}}

	header, ok := tb.HeaderRow()
	require.True(t, ok)
	require.Equal(t, []string{"A", "B"}, header)

	body := tb.BodyRows()
	require.Equal(t, [][]string{{"1", "2"}}, body)
}

func TestHeaderRowWithoutSeparator(t *testing.T) {
	tb := Table{Rows: []string{"| A | B |", "| 1 | 2 |"}}

	_, ok := tb.HeaderRow()
	require.False(t, ok)
	require.Equal(t, [][]string{{"A", "B"}, {"1", "2"}}, tb.BodyRows())
}

func TestHeaderRowSingleRow(t *testing.T) {
	tb := Table{Rows: []string{"| only |"}}

	_, ok := tb.HeaderRow()
	require.False(t, ok)
	require.Equal(t, [][]string{{"only"}}, tb.BodyRows())
}

func TestDocumentHashDeterministic(t *testing.T) {
	d := Document{Blocks: []Block{
		Heading{Level: 1, Text: "Title"},
		Paragraph{Text: "body"},
	}}
	require.Equal(t, d.Hash(), d.Hash())
}

func TestDocumentHashSensitiveToKind(t *testing.T) {
	a := Document{Blocks: []Block{Paragraph{Text: "x"}}}
	b := Document{Blocks: []Block{Blockquote{Text: "x"}}}
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestDocumentHashSensitiveToOrder(t *testing.T) {
	a := Document{Blocks: []Block{Paragraph{Text: "x"}, Paragraph{Text: "y"}}}
	b := Document{Blocks: []Block{Paragraph{Text: "y"}, Paragraph{Text: "x"}}}
	require.NotEqual(t, a.Hash(), b.Hash())
}
