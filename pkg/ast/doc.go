package ast

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
)

// Document pairs the normalized source text with its parsed blocks.
// Documents are recomputed fresh on every parse; nothing here mutates.
type Document struct {
	Source string
	Blocks []Block
}

// Hash returns a deterministic BLAKE3 digest of the document structure.
// Downstream consumers use it to dedup or cache rendered output; the
// renderer itself never reads it.
func (d Document) Hash() string {
	h := blake3.New()

	field := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	for _, b := range d.Blocks {
		switch b := b.(type) {
		case Heading:
			field("heading")
			field(strconv.Itoa(b.Level))
			field(b.Text)
		case Blockquote:
			field("blockquote")
			field(b.Text)
		case ListItem:
			field("list-item")
			field(b.Ordinal)
			field(b.Text)
		case Image:
			field("image")
			field(b.Alt)
			field(b.URL)
		case ImagePlaceholder:
			field("image-placeholder")
			field(b.Caption)
		case MathBlock:
			field("math-block")
			field(b.TeX)
		case Table:
			field("table")
			field(strings.Join(b.Rows, "\n"))
		case Paragraph:
			field("paragraph")
			field(b.Text)
		}
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
