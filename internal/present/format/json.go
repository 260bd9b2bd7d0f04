package format

import (
	"encoding/json"
	"io"

	"github.com/avelorn/marklite/pkg/ast"
)

// jsonBlock is one block flattened for machine consumers. Kind is the
// discriminator; only the fields for that kind are populated.
type jsonBlock struct {
	Kind    string   `json:"kind"`
	Level   int      `json:"level,omitempty"`
	Text    string   `json:"text,omitempty"`
	Ordinal string   `json:"ordinal,omitempty"`
	Alt     string   `json:"alt,omitempty"`
	URL     string   `json:"url,omitempty"`
	Caption string   `json:"caption,omitempty"`
	TeX     string   `json:"tex,omitempty"`
	Rows    []string `json:"rows,omitempty"`
}

type jsonDocument struct {
	Digest string      `json:"digest"`
	Blocks []jsonBlock `json:"blocks"`
}

// WriteJSONDocument emits the digest plus typed block list.
func WriteJSONDocument(w io.Writer, doc ast.Document, indent bool) error {
	out := jsonDocument{
		Digest: doc.Hash(),
		Blocks: make([]jsonBlock, 0, len(doc.Blocks)),
	}
	for _, blk := range doc.Blocks {
		out.Blocks = append(out.Blocks, toJSONBlock(blk))
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func toJSONBlock(blk ast.Block) jsonBlock {
	switch blk := blk.(type) {
	case ast.Heading:
		return jsonBlock{Kind: "heading", Level: blk.Level, Text: blk.Text}
	case ast.Blockquote:
		return jsonBlock{Kind: "blockquote", Text: blk.Text}
	case ast.ListItem:
		kind := "unordered-item"
		if blk.Ordinal != "" {
			kind = "ordered-item"
		}
		return jsonBlock{Kind: kind, Ordinal: blk.Ordinal, Text: blk.Text}
	case ast.Image:
		return jsonBlock{Kind: "image", Alt: blk.Alt, URL: blk.URL}
	case ast.ImagePlaceholder:
		return jsonBlock{Kind: "image-placeholder", Caption: blk.Caption}
	case ast.MathBlock:
		return jsonBlock{Kind: "math-block", TeX: blk.TeX}
	case ast.Table:
		return jsonBlock{Kind: "table", Rows: blk.Rows}
	case ast.Paragraph:
		return jsonBlock{Kind: "paragraph", Text: blk.Text}
	}
	return jsonBlock{Kind: "unknown"}
}
