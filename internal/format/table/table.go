// Package table aligns short text columns for menu rows.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads every cell to the widest entry of its column, measured in
// terminal cells, and joins columns with gap spaces. Rows shorter than the
// first row are padded with empty cells.
func Format(rows [][]string, alignments []Alignment, gap int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	sep := strings.Repeat(" ", max(gap, 0))
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(sep)
			}
			pad := strings.Repeat(" ", widths[c]-runewidth.StringWidth(cell))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad + cell)
				continue
			}
			b.WriteString(cell + pad)
		}
		out[i] = b.String()
	}
	return out
}
