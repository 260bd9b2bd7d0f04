package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/avelorn/marklite/internal/parse"
	"github.com/avelorn/marklite/pkg/ast"
)

// WritePlainDocument renders the document as unstyled text for piping.
// Inline markers are stripped; links keep their URL in parentheses.
func WritePlainDocument(w io.Writer, doc ast.Document) error {
	var b strings.Builder
	for i, blk := range doc.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		writePlainBlock(&b, blk)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePlainBlock(b *strings.Builder, blk ast.Block) {
	switch blk := blk.(type) {
	case ast.Heading:
		b.WriteString(plainInline(blk.Text) + "\n")
	case ast.Blockquote:
		b.WriteString("> " + plainInline(blk.Text) + "\n")
	case ast.ListItem:
		marker := "-"
		if blk.Ordinal != "" {
			marker = blk.Ordinal
		}
		b.WriteString(marker + " " + plainInline(blk.Text) + "\n")
	case ast.Image:
		fmt.Fprintf(b, "%s (%s)\n", blk.Alt, blk.URL)
	case ast.ImagePlaceholder:
		fmt.Fprintf(b, "[image: %s]\n", blk.Caption)
	case ast.MathBlock:
		b.WriteString(blk.TeX + "\n")
	case ast.Table:
		writePlainTable(b, blk)
	case ast.Paragraph:
		b.WriteString(plainInline(blk.Text) + "\n")
	}
}

func writePlainTable(b *strings.Builder, tb ast.Table) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	if header, ok := tb.HeaderRow(); ok {
		fmt.Fprintln(tw, strings.Join(plainCells(header), "\t"))
	}
	for _, row := range tb.BodyRows() {
		fmt.Fprintln(tw, strings.Join(plainCells(row), "\t"))
	}
	_ = tw.Flush()
}

// plainCells strips inline markers from each table cell.
func plainCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = plainInline(c)
	}
	return out
}

func plainInline(text string) string {
	var b strings.Builder
	for _, seg := range parse.ParseInline(text) {
		switch seg := seg.(type) {
		case ast.Text:
			b.WriteString(seg.Content)
		case ast.Bold:
			b.WriteString(seg.Content)
		case ast.Math:
			b.WriteString(seg.TeX)
		case ast.Link:
			fmt.Fprintf(&b, "%s (%s)", seg.Label, seg.URL)
		}
	}
	return b.String()
}
