// Package parse implements the markdown-lite block and inline grammar.
// The dialect is the one produced by study-material generators: ATX
// headings to depth three, blockquotes, flat lists, pipe tables, TeX
// math between $ / $$ delimiters, [IMAGE: caption] placeholders and
// standalone ![alt](url) images. Everything else is a paragraph.
package parse

import (
	"regexp"
	"strings"

	"github.com/avelorn/marklite/pkg/ast"
)

var (
	orderedItemRe = regexp.MustCompile(`^\d+\.\s`)
	placeholderRe = regexp.MustCompile(`(?i)^\[(?:IMAGE_PLACEHOLDER|IMAGE):\s*(.*)\]$`)
	imageLineRe   = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)$`)
)

// Document normalizes src, parses it and wraps the result.
func Document(src string) ast.Document {
	src = normalize(src)
	return ast.Document{Source: src, Blocks: parseLines(strings.Split(src, "\n"))}
}

// Parse returns the block sequence for src. Blocks appear in source
// line order; blank lines emit nothing; every non-blank line belongs to
// exactly one block.
func Parse(src string) []ast.Block {
	return parseLines(strings.Split(normalize(src), "\n"))
}

// normalize folds CRLF and the literal two-character `\n` escape that
// model output frequently carries into real newlines.
func normalize(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, `\n`, "\n")
	return src
}

func parseLines(lines []string) []ast.Block {
	blocks := make([]ast.Block, 0, len(lines))
	for i := 0; i < len(lines); {
		b, next := parseAt(lines, i)
		if b != nil {
			blocks = append(blocks, b)
		}
		if next <= i {
			// every rule consumes at least one line
			next = i + 1
		}
		i = next
	}
	return blocks
}

// parseAt classifies the line at i and returns the consumed block plus
// the index of the first unconsumed line. A nil block means the line
// was blank. Rule precedence: block math, table, heading, blockquote,
// unordered item, ordered item, image placeholder, image, paragraph.
func parseAt(lines []string, i int) (ast.Block, int) {
	line := lines[i]
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return nil, i + 1
	case strings.HasPrefix(trimmed, "$$"):
		return parseMathBlock(lines, i)
	case strings.HasPrefix(trimmed, "|"):
		return parseTable(lines, i)
	}

	if strings.HasPrefix(line, "# ") {
		return ast.Heading{Level: 1, Text: line[2:]}, i + 1
	}
	if strings.HasPrefix(line, "## ") {
		return ast.Heading{Level: 2, Text: line[3:]}, i + 1
	}
	if strings.HasPrefix(line, "### ") {
		return ast.Heading{Level: 3, Text: line[4:]}, i + 1
	}
	if strings.HasPrefix(line, "> ") {
		return ast.Blockquote{Text: line[2:]}, i + 1
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return ast.ListItem{Text: trimmed[2:]}, i + 1
	}
	if orderedItemRe.MatchString(trimmed) {
		dot := strings.Index(trimmed, ".")
		return ast.ListItem{
			Ordinal: trimmed[:dot+1],
			Text:    strings.TrimSpace(trimmed[dot+1:]),
		}, i + 1
	}
	if m := placeholderRe.FindStringSubmatch(trimmed); m != nil {
		return ast.ImagePlaceholder{Caption: unquote(m[1])}, i + 1
	}
	if m := imageLineRe.FindStringSubmatch(trimmed); m != nil {
		return ast.Image{Alt: m[1], URL: m[2]}, i + 1
	}

	return ast.Paragraph{Text: strings.TrimRight(line, " \t")}, i + 1
}

// parseMathBlock handles a line whose trimmed form starts with $$.
// Single-line form: `$$ ... $$` with the span between the delimiters
// kept verbatim. Otherwise raw lines accumulate verbatim until a line
// containing $$ (its prefix before the delimiter is kept); with no
// terminator the block runs to end of input.
func parseMathBlock(lines []string, i int) (ast.Block, int) {
	trimmed := strings.TrimSpace(lines[i])
	if len(trimmed) > 4 && strings.HasSuffix(trimmed, "$$") {
		return ast.MathBlock{TeX: trimmed[2 : len(trimmed)-2]}, i + 1
	}

	var buf []string
	j := i + 1
	for j < len(lines) {
		if idx := strings.Index(lines[j], "$$"); idx >= 0 {
			if before := lines[j][:idx]; strings.TrimSpace(before) != "" {
				buf = append(buf, before)
			}
			return ast.MathBlock{TeX: strings.Join(buf, "\n")}, j + 1
		}
		buf = append(buf, lines[j])
		j++
	}
	return ast.MathBlock{TeX: strings.Join(buf, "\n")}, j
}

// parseTable captures a run of consecutive |-prefixed lines as one
// table. Header/body split is decided later by ast.Table.
func parseTable(lines []string, i int) (ast.Block, int) {
	var rows []string
	j := i
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(trimmed, "|") {
			break
		}
		rows = append(rows, trimmed)
		j++
	}
	return ast.Table{Rows: rows}, j
}

// unquote strips one optional pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
