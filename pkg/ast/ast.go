// Package ast defines the block and inline node types produced by the
// markdown-lite parser. The grammar is fixed: both node sets are closed
// interfaces so renderers can switch exhaustively over the kinds.
package ast

// Block is one structural unit of a document: a heading, a list item,
// a table, and so on. Implementations live in this package only.
type Block interface {
	block()
}

// Heading is a `# `, `## ` or `### ` line. Level is 1, 2 or 3.
type Heading struct {
	Level int
	Text  string
}

// Blockquote is a `> ` line.
type Blockquote struct {
	Text string
}

// ListItem is a single bullet. Ordinal is empty for `- `/`* ` items and
// holds the rendered label (e.g. "12.") for numbered items.
type ListItem struct {
	Ordinal string
	Text    string
}

// Image is a standalone `![alt](url)` line.
type Image struct {
	Alt string
	URL string
}

// ImagePlaceholder is an `[IMAGE: caption]` marker emitted by upstream
// generators when no real image exists yet.
type ImagePlaceholder struct {
	Caption string
}

// MathBlock is display math between `$$` delimiters. TeX is the raw
// source, newline-joined for multi-line blocks.
type MathBlock struct {
	TeX string
}

// Table is a run of `|`-prefixed lines. Rows holds the raw, trimmed row
// strings; header/body resolution happens in HeaderRow and BodyRows.
type Table struct {
	Rows []string
}

// Paragraph is the fallback for any line no other rule claims.
type Paragraph struct {
	Text string
}

func (Heading) block()          {}
func (Blockquote) block()       {}
func (ListItem) block()         {}
func (Image) block()            {}
func (ImagePlaceholder) block() {}
func (MathBlock) block()        {}
func (Table) block()            {}
func (Paragraph) block()        {}

// Inline is one styled run of text inside a block's content.
type Inline interface {
	inline()
}

// Text is an unstyled run.
type Text struct {
	Content string
}

// Bold is a `**...**` run.
type Bold struct {
	Content string
}

// Math is a `$...$` span. TeX is the raw source between the delimiters.
type Math struct {
	TeX string
}

// Link is a `[label](url)` span.
type Link struct {
	Label string
	URL   string
}

func (Text) inline() {}
func (Bold) inline() {}
func (Math) inline() {}
func (Link) inline() {}
