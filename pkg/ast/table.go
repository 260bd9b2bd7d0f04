package ast

import "strings"

// SplitRow splits a raw table row on `|`, drops cells that are empty
// after trimming (which also removes the edge cells of a `| a | b |`
// row), and trims the survivors.
func SplitRow(raw string) []string {
	parts := strings.Split(raw, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		c := strings.TrimSpace(p)
		if c == "" {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

// HeaderRow returns the header cells when the table carries a markdown
// separator row: at least two rows, and the second row's first cell
// contains `---`. ok is false for headerless tables.
func (t Table) HeaderRow() (cells []string, ok bool) {
	if len(t.Rows) < 2 {
		return nil, false
	}
	sep := SplitRow(t.Rows[1])
	if len(sep) == 0 || !strings.Contains(sep[0], "---") {
		return nil, false
	}
	return SplitRow(t.Rows[0]), true
}

// BodyRows returns the data rows as split cells. When a header is
// present the first two raw rows (header and separator) are skipped;
// otherwise every row is body.
func (t Table) BodyRows() [][]string {
	start := 0
	if _, ok := t.HeaderRow(); ok {
		start = 2
	}
	rows := make([][]string, 0, len(t.Rows)-start)
	for _, r := range t.Rows[start:] {
		rows = append(rows, SplitRow(r))
	}
	return rows
}
