package parse

import (
	"regexp"

	"github.com/avelorn/marklite/pkg/ast"
)

var (
	inlineMathRe = regexp.MustCompile(`\$[^$]+\$`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// ParseInline splits one line of content into ordered styled segments.
// Three passes, each only over text the previous pass left unclaimed:
// $...$ math spans first, then [label](url) links, then **bold**.
// Concatenating the segments' source forms reconstructs the line.
func ParseInline(line string) []ast.Inline {
	if line == "" {
		return nil
	}
	var segs []ast.Inline
	last := 0
	for _, loc := range inlineMathRe.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			segs = appendLinkSegments(segs, line[last:loc[0]])
		}
		segs = append(segs, ast.Math{TeX: line[loc[0]+1 : loc[1]-1]})
		last = loc[1]
	}
	if last < len(line) {
		segs = appendLinkSegments(segs, line[last:])
	}
	return segs
}

func appendLinkSegments(segs []ast.Inline, text string) []ast.Inline {
	last := 0
	for _, loc := range linkRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segs = appendBoldSegments(segs, text[last:loc[0]])
		}
		segs = append(segs, ast.Link{
			Label: text[loc[2]:loc[3]],
			URL:   text[loc[4]:loc[5]],
		})
		last = loc[1]
	}
	if last < len(text) {
		segs = appendBoldSegments(segs, text[last:])
	}
	return segs
}

func appendBoldSegments(segs []ast.Inline, text string) []ast.Inline {
	last := 0
	for _, loc := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segs = append(segs, ast.Text{Content: text[last:loc[0]]})
		}
		segs = append(segs, ast.Bold{Content: text[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, ast.Text{Content: text[last:]})
	}
	return segs
}
