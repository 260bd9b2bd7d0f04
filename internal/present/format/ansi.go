package format

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelorn/marklite/internal/mathtex"
	"github.com/avelorn/marklite/internal/parse"
	"github.com/avelorn/marklite/pkg/ast"
)

// ANSIOptions controls the terminal writer. Compact selects the chat
// variant: tighter spacing and quieter accents, same parse either way.
type ANSIOptions struct {
	Compact bool
	Width   int
	Math    mathtex.Renderer
}

type ansiStyles struct {
	heading   [3]lipgloss.Style
	quote     lipgloss.Style
	quoteBar  string
	bullet    string
	ordinal   lipgloss.Style
	bold      lipgloss.Style
	linkLabel lipgloss.Style
	linkURL   lipgloss.Style
	math      lipgloss.Style
	mathErr   lipgloss.Style
	mathBlock lipgloss.Style
	imageAlt  lipgloss.Style
	caption   lipgloss.Style
	tableHead lipgloss.Style
	paragraph lipgloss.Style
	blockGap  string
}

func documentStyles() ansiStyles {
	return ansiStyles{
		heading: [3]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		},
		quote:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		quoteBar:  "│ ",
		bullet:    "• ",
		ordinal:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		bold:      lipgloss.NewStyle().Bold(true),
		linkLabel: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12")),
		linkURL:   lipgloss.NewStyle().Faint(true),
		math:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		mathErr:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		mathBlock: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).PaddingLeft(4),
		imageAlt:  lipgloss.NewStyle().Bold(true),
		caption:   lipgloss.NewStyle().Italic(true).Faint(true),
		tableHead: lipgloss.NewStyle().Bold(true),
		paragraph: lipgloss.NewStyle(),
		blockGap:  "\n\n",
	}
}

// chatStyles is the compact variant used for rendering chat messages
// inline: no underlines, muted headings, single-newline block gaps.
func chatStyles() ansiStyles {
	st := documentStyles()
	st.heading[0] = lipgloss.NewStyle().Bold(true)
	st.heading[1] = lipgloss.NewStyle().Bold(true)
	st.heading[2] = lipgloss.NewStyle().Bold(true).Faint(true)
	st.mathBlock = st.mathBlock.PaddingLeft(2)
	st.blockGap = "\n"
	return st
}

// WriteANSIDocument renders the document for a terminal.
func WriteANSIDocument(w io.Writer, doc ast.Document, opts ANSIOptions) error {
	if opts.Math == nil {
		opts.Math = mathtex.Literal{}
	}
	st := documentStyles()
	if opts.Compact {
		st = chatStyles()
	}
	if opts.Width > 0 {
		st.paragraph = st.paragraph.Width(opts.Width)
	}

	var b strings.Builder
	var prev ast.Block
	for i, blk := range doc.Blocks {
		if i > 0 {
			if adjacentListItems(prev, blk) {
				b.WriteString("\n")
			} else {
				b.WriteString(st.blockGap)
			}
		}
		b.WriteString(renderANSIBlock(blk, st, opts))
		prev = blk
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// adjacentListItems keeps bullets of one list visually grouped even in
// the default variant's roomier layout.
func adjacentListItems(a, b ast.Block) bool {
	_, aOK := a.(ast.ListItem)
	_, bOK := b.(ast.ListItem)
	return aOK && bOK
}

func renderANSIBlock(blk ast.Block, st ansiStyles, opts ANSIOptions) string {
	switch blk := blk.(type) {
	case ast.Heading:
		return st.heading[blk.Level-1].Render(renderANSIInline(blk.Text, st, opts))
	case ast.Blockquote:
		return st.quote.Render(st.quoteBar + renderANSIInline(blk.Text, st, opts))
	case ast.ListItem:
		if blk.Ordinal != "" {
			return st.ordinal.Render(blk.Ordinal) + " " + renderANSIInline(blk.Text, st, opts)
		}
		return st.bullet + renderANSIInline(blk.Text, st, opts)
	case ast.Image:
		return st.imageAlt.Render(blk.Alt) + " " + st.linkURL.Render("("+blk.URL+")")
	case ast.ImagePlaceholder:
		return st.caption.Render("[image: " + blk.Caption + "]")
	case ast.MathBlock:
		out, err := opts.Math.Render(blk.TeX, true)
		if err != nil {
			return st.mathErr.Render(blk.TeX)
		}
		return st.mathBlock.Render(out)
	case ast.Table:
		return renderANSITable(blk, st, opts)
	case ast.Paragraph:
		return st.paragraph.Render(renderANSIInline(blk.Text, st, opts))
	}
	return ""
}

func renderANSIInline(text string, st ansiStyles, opts ANSIOptions) string {
	var b strings.Builder
	for _, seg := range parse.ParseInline(text) {
		switch seg := seg.(type) {
		case ast.Text:
			b.WriteString(seg.Content)
		case ast.Bold:
			b.WriteString(st.bold.Render(seg.Content))
		case ast.Math:
			out, err := opts.Math.Render(seg.TeX, false)
			if err != nil {
				b.WriteString(st.mathErr.Render("$" + seg.TeX + "$"))
				continue
			}
			b.WriteString(st.math.Render(out))
		case ast.Link:
			b.WriteString(st.linkLabel.Render(seg.Label))
			b.WriteString(" " + st.linkURL.Render("("+seg.URL+")"))
		}
	}
	return b.String()
}

// renderANSITable lays out cells with manual padding. Cell text goes
// through the inline segmenter like every other free-text payload;
// widths are measured on the resolved cells with lipgloss.Width, which
// ignores escape sequences.
func renderANSITable(tb ast.Table, st ansiStyles, opts ANSIOptions) string {
	resolve := func(row []string) []string {
		out := make([]string, len(row))
		for i, c := range row {
			out[i] = renderANSIInline(c, st, opts)
		}
		return out
	}

	var header []string
	rawHeader, hasHeader := tb.HeaderRow()
	if hasHeader {
		header = resolve(rawHeader)
	}
	body := make([][]string, 0, len(tb.Rows))
	for _, row := range tb.BodyRows() {
		body = append(body, resolve(row))
	}

	var widths []int
	measure := func(row []string) {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if hasHeader {
		measure(header)
	}
	for _, row := range body {
		measure(row)
	}

	pad := func(c string, i int) string {
		if i >= len(widths) {
			return c
		}
		return c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
	}

	var lines []string
	if hasHeader {
		cells := make([]string, len(header))
		for i, c := range header {
			cells[i] = st.tableHead.Render(pad(c, i))
		}
		lines = append(lines, strings.Join(cells, "  "))
		total := 0
		for _, w := range widths {
			total += w + 2
		}
		if total > 2 {
			total -= 2
		}
		lines = append(lines, st.linkURL.Render(strings.Repeat("─", total)))
	}
	for _, row := range body {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = pad(c, i)
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n")
}
