// Package present dispatches a parsed document to one of the output
// writers. Options select the writer and its presentation knobs; the
// parse is identical for every mode and variant.
package present

import (
	"context"
	"io"

	"github.com/avelorn/marklite/internal/mathtex"
	"github.com/avelorn/marklite/internal/present/format"
	"github.com/avelorn/marklite/internal/present/tui"
	"github.com/avelorn/marklite/pkg/ast"
)

type Mode int

const (
	ModeANSI Mode = iota
	ModeHTML
	ModeJSON
	ModePlain
	ModeTUI
)

// ParseMode parses a string like "ansi", "html", "json", "plain", "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "ansi":
		return ModeANSI, true
	case "html":
		return ModeHTML, true
	case "json":
		return ModeJSON, true
	case "plain":
		return ModePlain, true
	case "tui":
		return ModeTUI, true
	default:
		return ModeANSI, false
	}
}

type Variant int

const (
	VariantDefault Variant = iota
	VariantChat
)

// ParseVariant parses "default" or "chat".
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "default":
		return VariantDefault, true
	case "chat":
		return VariantChat, true
	default:
		return VariantDefault, false
	}
}

type Options struct {
	Mode    Mode
	Variant Variant
	Width   int
	Indent  bool
	Math    mathtex.Renderer
}

// RenderDocument renders doc to w according to options.
func RenderDocument(ctx context.Context, w io.Writer, doc ast.Document, opts Options) error {
	ansi := format.ANSIOptions{
		Compact: opts.Variant == VariantChat,
		Width:   opts.Width,
		Math:    opts.Math,
	}
	switch opts.Mode {
	case ModeHTML:
		return format.WriteHTMLDocument(w, doc, opts.Math)
	case ModeJSON:
		return format.WriteJSONDocument(w, doc, opts.Indent)
	case ModePlain:
		return format.WritePlainDocument(w, doc)
	case ModeTUI:
		return tui.Preview(ctx, doc, ansi)
	default:
		return format.WriteANSIDocument(w, doc, ansi)
	}
}
