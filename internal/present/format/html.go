package format

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/avelorn/marklite/internal/mathtex"
	"github.com/avelorn/marklite/internal/parse"
	"github.com/avelorn/marklite/pkg/ast"
)

var escape = html.EscapeString

// WriteHTMLDocument renders the document as an HTML fragment. Math
// goes through the injected renderer, Deferred when none is given; a
// failed occurrence degrades to an escaped literal span and never
// aborts the document. Renderer output is trusted as markup.
func WriteHTMLDocument(w io.Writer, doc ast.Document, math mathtex.Renderer) error {
	if math == nil {
		math = mathtex.Deferred{}
	}
	var b strings.Builder
	blocks := doc.Blocks
	for i := 0; i < len(blocks); {
		if _, ok := blocks[i].(ast.ListItem); ok {
			i = writeHTMLList(&b, blocks, i, math)
			continue
		}
		writeHTMLBlock(&b, blocks[i], math)
		i++
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeHTMLList groups the run of consecutive list items starting at i
// into one <ul> or <ol>, returning the index past the run. The list
// kind follows the first item; a numbered run keeps its starting
// ordinal via the start attribute.
func writeHTMLList(b *strings.Builder, blocks []ast.Block, i int, math mathtex.Renderer) int {
	first := blocks[i].(ast.ListItem)
	ordered := first.Ordinal != ""

	tag := "ul"
	open := "<ul>\n"
	if ordered {
		tag = "ol"
		open = "<ol>\n"
		if n, err := strconv.Atoi(strings.TrimSuffix(first.Ordinal, ".")); err == nil && n != 1 {
			open = fmt.Sprintf("<ol start=%q>\n", strconv.Itoa(n))
		}
	}

	b.WriteString(open)
	j := i
	for j < len(blocks) {
		item, ok := blocks[j].(ast.ListItem)
		if !ok || (item.Ordinal != "") != ordered {
			break
		}
		fmt.Fprintf(b, "<li>%s</li>\n", htmlInline(item.Text, math))
		j++
	}
	b.WriteString("</" + tag + ">\n")
	return j
}

func writeHTMLBlock(b *strings.Builder, blk ast.Block, math mathtex.Renderer) {
	switch blk := blk.(type) {
	case ast.Heading:
		fmt.Fprintf(b, "<h%d>%s</h%d>\n", blk.Level, htmlInline(blk.Text, math), blk.Level)
	case ast.Blockquote:
		fmt.Fprintf(b, "<blockquote>%s</blockquote>\n", htmlInline(blk.Text, math))
	case ast.ListItem:
		// reached only for items not grouped by writeHTMLList
		fmt.Fprintf(b, "<li>%s</li>\n", htmlInline(blk.Text, math))
	case ast.Image:
		fmt.Fprintf(b, "<img src=%q alt=%q>\n", blk.URL, blk.Alt)
	case ast.ImagePlaceholder:
		fmt.Fprintf(b, "<figure class=\"placeholder\"><figcaption>%s</figcaption></figure>\n",
			escape(blk.Caption))
	case ast.MathBlock:
		out, err := math.Render(blk.TeX, true)
		if err != nil {
			fmt.Fprintf(b, "<pre class=\"math-error\">%s</pre>\n", escape(blk.TeX))
			return
		}
		fmt.Fprintf(b, "<div class=\"math\">%s</div>\n", out)
	case ast.Table:
		writeHTMLTable(b, blk, math)
	case ast.Paragraph:
		fmt.Fprintf(b, "<p>%s</p>\n", htmlInline(blk.Text, math))
	}
}

func writeHTMLTable(b *strings.Builder, tb ast.Table, math mathtex.Renderer) {
	b.WriteString("<table>\n")
	if header, ok := tb.HeaderRow(); ok {
		b.WriteString("<thead><tr>")
		for _, c := range header {
			fmt.Fprintf(b, "<th>%s</th>", htmlInline(c, math))
		}
		b.WriteString("</tr></thead>\n")
	}
	b.WriteString("<tbody>\n")
	for _, row := range tb.BodyRows() {
		b.WriteString("<tr>")
		for _, c := range row {
			fmt.Fprintf(b, "<td>%s</td>", htmlInline(c, math))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func htmlInline(text string, math mathtex.Renderer) string {
	var b strings.Builder
	for _, seg := range parse.ParseInline(text) {
		switch seg := seg.(type) {
		case ast.Text:
			b.WriteString(escape(seg.Content))
		case ast.Bold:
			b.WriteString("<strong>" + escape(seg.Content) + "</strong>")
		case ast.Math:
			out, err := math.Render(seg.TeX, false)
			if err != nil {
				b.WriteString("<code class=\"math-error\">" + escape(seg.TeX) + "</code>")
				continue
			}
			b.WriteString(out)
		case ast.Link:
			fmt.Fprintf(&b, "<a href=%q>%s</a>", seg.URL, escape(seg.Label))
		}
	}
	return b.String()
}
