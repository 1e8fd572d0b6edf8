package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/atomicstack/slashpad/internal/engine"
)

// cellStyle is a comparable description of how one cell is drawn.
type cellStyle struct {
	fg        string
	bg        string
	bold      bool
	italic    bool
	strike    bool
	underline bool
	reverse   bool
}

func styleOf(s *lipgloss.Style) cellStyle {
	if s == nil {
		return cellStyle{}
	}
	cs := cellStyle{
		bold:      s.GetBold(),
		italic:    s.GetItalic(),
		strike:    s.GetStrikethrough(),
		underline: s.GetUnderline(),
		reverse:   s.GetReverse(),
	}
	if c, ok := s.GetForeground().(lipgloss.Color); ok {
		cs.fg = string(c)
	}
	if c, ok := s.GetBackground().(lipgloss.Color); ok {
		cs.bg = string(c)
	}
	return cs
}

func (cs cellStyle) toStyle() lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(cs.bold).
		Italic(cs.italic).
		Strikethrough(cs.strike).
		Underline(cs.underline).
		Reverse(cs.reverse)
	if cs.fg != "" {
		st = st.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != "" {
		st = st.Background(lipgloss.Color(cs.bg))
	}
	return st
}

// cell is one grapheme cluster on screen. Cells that belong to document
// text carry the position of their first rune.
type cell struct {
	text  string
	width int
	style cellStyle
	pos   engine.Pos
	hit   bool
}

// visualLine is one rendered row of the document.
type visualLine struct {
	cells []cell
	fill  cellStyle
	block int
	start int
	end   int
	deco  bool
}

// docView is the laid-out document for one frame.
type docView struct {
	lines []visualLine
	width int
}

// layoutOptions controls how the document is laid out.
type layoutOptions struct {
	width      int
	caret      bool
	language   func(block int) string
	highlights func(block int) []engine.Span
}

func layoutDoc(st engine.State, opts layoutOptions) docView {
	view := docView{width: max(opts.width, 1)}
	sel := st.Selection
	from, to := sel.From(), sel.To()
	ordinal := 0
	for i, b := range st.Doc.Blocks {
		if b.List == engine.NodeOrderedList {
			ordinal++
		} else {
			ordinal = 0
		}
		if i > 0 && !(b.List != "" && st.Doc.Blocks[i-1].List == b.List) {
			view.lines = append(view.lines, visualLine{block: i, start: -1, end: -1, deco: true})
		}
		bl := blockLayout{
			index:   i,
			block:   b,
			width:   view.width,
			from:    from,
			to:      to,
			head:    sel.Head,
			caret:   opts.caret,
			ordinal: ordinal,
		}
		if b.Type == engine.NodeCodeBlock {
			bl.language = b.Language
			if opts.language != nil {
				bl.language = opts.language(i)
			}
			if opts.highlights != nil {
				bl.spans = opts.highlights(i)
			}
		}
		view.lines = append(view.lines, bl.lines()...)
	}
	return view
}

type blockLayout struct {
	index    int
	block    *engine.Block
	width    int
	from     engine.Pos
	to       engine.Pos
	head     engine.Pos
	caret    bool
	ordinal  int
	language string
	spans    []engine.Span
}

func (bl blockLayout) base() cellStyle {
	switch bl.block.Type {
	case engine.NodeHeading:
		return styleOf(styles.Heading(bl.block.Level))
	case engine.NodeCodeBlock:
		return styleOf(styles.CodeBlock)
	}
	return styleOf(styles.Text)
}

// prefix returns the decoration drawn before the first visual line and the
// indentation for continuation lines.
func (bl blockLayout) prefix() (string, cellStyle, int) {
	switch {
	case bl.block.List == engine.NodeBulletList:
		return "• ", styleOf(styles.ListMarker), 2
	case bl.block.List == engine.NodeOrderedList:
		p := fmt.Sprintf("%d. ", bl.ordinal)
		return p, styleOf(styles.ListMarker), runewidth.StringWidth(p)
	case bl.block.Type == engine.NodeCodeBlock:
		return "  ", styleOf(styles.CodeBlock), 2
	}
	return "", cellStyle{}, 0
}

func (bl blockLayout) lines() []visualLine {
	base := bl.base()
	var out []visualLine
	fill := cellStyle{}
	if bl.block.Type == engine.NodeCodeBlock {
		fill = styleOf(styles.CodeBlock)
		label := " " + bl.language
		out = append(out, visualLine{
			cells: textCells(label, styleOf(styles.CodeLabel)),
			fill:  styleOf(styles.CodeLabel),
			block: bl.index,
			start: -1,
			end:   -1,
			deco:  true,
		})
	}
	prefix, prefixStyle, indent := bl.prefix()
	avail := max(bl.width-indent, 1)

	offset := 0
	segment := []cell{}
	segStart := 0
	first := true
	flush := func(segEnd int) {
		for _, row := range wrapCells(segment, avail, segStart, segEnd) {
			line := visualLine{fill: fill, block: bl.index, start: row.start, end: row.end}
			lead := strings.Repeat(" ", indent)
			if first {
				lead = prefix
				first = false
			}
			if lead != "" {
				line.cells = append(line.cells, textCells(lead, prefixStyle)...)
			}
			line.cells = append(line.cells, row.cells...)
			out = append(out, line)
		}
		segment = segment[:0]
	}

	for _, run := range bl.block.Content {
		style := applyMarks(base, run.Marks)
		g := uniseg.NewGraphemes(run.Text)
		for g.Next() {
			text := g.Str()
			n := len(g.Runes())
			if text == "\n" {
				bl.caretAtEnd(&segment, offset, base)
				flush(offset)
				offset += n
				segStart = offset
				continue
			}
			c := cell{
				text:  text,
				width: runewidth.StringWidth(text),
				style: bl.decorate(style, offset),
				pos:   engine.Pos{Block: bl.index, Offset: offset},
				hit:   true,
			}
			if c.width == 0 {
				c.width = 1
			}
			if text == "\t" {
				c.text, c.width = "  ", 2
			}
			segment = append(segment, c)
			offset += n
		}
	}
	bl.caretAtEnd(&segment, offset, base)
	flush(offset)
	return out
}

// decorate layers highlight colour, selection and caret over a text style.
func (bl blockLayout) decorate(style cellStyle, offset int) cellStyle {
	for _, sp := range bl.spans {
		if offset >= sp.Start && offset < sp.End {
			if sp.Color != "" {
				style.fg = sp.Color
			}
			style.bold = style.bold || sp.Bold
			style.italic = style.italic || sp.Italic
			break
		}
	}
	p := engine.Pos{Block: bl.index, Offset: offset}
	if engine.ComparePos(bl.from, p) <= 0 && engine.ComparePos(p, bl.to) < 0 {
		style.bg = string(styles.Selection)
	}
	if bl.caret && p == bl.head {
		style.reverse = true
	}
	return style
}

// caretAtEnd appends a blank caret cell when the caret sits after the last
// character of a segment.
func (bl blockLayout) caretAtEnd(segment *[]cell, offset int, base cellStyle) {
	if !bl.caret || bl.head != (engine.Pos{Block: bl.index, Offset: offset}) {
		return
	}
	style := base
	style.reverse = true
	*segment = append(*segment, cell{
		text:  " ",
		width: 1,
		style: style,
		pos:   bl.head,
		hit:   true,
	})
}

func applyMarks(base cellStyle, marks engine.MarkSet) cellStyle {
	style := base
	if marks.Has(engine.MarkCode) {
		code := styleOf(styles.InlineCode)
		style.fg, style.bg = code.fg, code.bg
	}
	style.bold = style.bold || marks.Has(engine.MarkBold)
	style.italic = style.italic || marks.Has(engine.MarkItalic)
	style.strike = style.strike || marks.Has(engine.MarkStrike)
	return style
}

type wrappedRow struct {
	cells []cell
	start int
	end   int
}

// wrapCells breaks a newline-free run of cells into rows of at most width
// columns, preferring to break after a space.
func wrapCells(cells []cell, width, segStart, segEnd int) []wrappedRow {
	if len(cells) == 0 {
		return []wrappedRow{{start: segStart, end: segEnd}}
	}
	var rows []wrappedRow
	var row []cell
	used := 0
	rowStart := segStart
	for i := 0; i < len(cells); i++ {
		c := cells[i]
		if used+c.width > width && len(row) > 0 {
			cut := len(row)
			for j := len(row) - 1; j > 0; j-- {
				if row[j].text == " " {
					cut = j + 1
					break
				}
			}
			rest := append([]cell(nil), row[cut:]...)
			row = row[:cut]
			last := row[len(row)-1]
			rows = append(rows, wrappedRow{cells: row, start: rowStart, end: last.pos.Offset})
			if len(rest) > 0 {
				rowStart = rest[0].pos.Offset
			} else {
				rowStart = c.pos.Offset
			}
			row = rest
			used = 0
			for _, r := range rest {
				used += r.width
			}
		}
		row = append(row, c)
		used += c.width
	}
	rows = append(rows, wrappedRow{cells: row, start: rowStart, end: segEnd})
	return rows
}

func textCells(text string, style cellStyle) []cell {
	var cells []cell
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cells = append(cells, cell{
			text:  g.Str(),
			width: runewidth.StringWidth(g.Str()),
			style: style,
		})
	}
	return cells
}

// lineOf returns the visual line that shows p.
func (v docView) lineOf(p engine.Pos) int {
	fallback := -1
	for i, line := range v.lines {
		if line.deco || line.block != p.Block {
			continue
		}
		for _, c := range line.cells {
			if c.hit && c.pos == p {
				return i
			}
		}
		if fallback < 0 && p.Offset >= line.start && p.Offset <= line.end {
			fallback = i
		}
	}
	return fallback
}

// columnOf returns the screen column p is drawn at within its line.
func (v docView) columnOf(p engine.Pos) int {
	idx := v.lineOf(p)
	if idx < 0 {
		return 0
	}
	col := 0
	line := v.lines[idx]
	for _, c := range line.cells {
		if c.hit && engine.ComparePos(c.pos, p) >= 0 {
			return col
		}
		col += c.width
	}
	return col
}

// posAt maps a row and column of the laid-out document to a position.
func (v docView) posAt(row, col int) (engine.Pos, bool) {
	if row < 0 || row >= len(v.lines) {
		return engine.Pos{}, false
	}
	line := v.lines[row]
	if line.deco {
		return engine.Pos{}, false
	}
	x := 0
	for _, c := range line.cells {
		if col < x+c.width {
			if c.hit {
				return c.pos, true
			}
			return engine.Pos{Block: line.block, Offset: line.start}, true
		}
		x += c.width
	}
	return engine.Pos{Block: line.block, Offset: line.end}, true
}

// render draws a line padded to the view width.
func (l visualLine) render(width int) string {
	var sb strings.Builder
	used := 0
	i := 0
	for i < len(l.cells) {
		style := l.cells[i].style
		var chunk strings.Builder
		for i < len(l.cells) && l.cells[i].style == style {
			if used+l.cells[i].width > width {
				break
			}
			chunk.WriteString(l.cells[i].text)
			used += l.cells[i].width
			i++
		}
		sb.WriteString(renderStyled(style, chunk.String()))
		if i < len(l.cells) && used+l.cells[i].width > width {
			break
		}
	}
	if pad := width - used; pad > 0 {
		sb.WriteString(renderStyled(l.fill, strings.Repeat(" ", pad)))
	}
	return sb.String()
}

var styleCache = map[cellStyle]lipgloss.Style{}

func renderStyled(cs cellStyle, text string) string {
	if text == "" {
		return ""
	}
	if cs == (cellStyle{}) {
		return text
	}
	st, ok := styleCache[cs]
	if !ok {
		st = cs.toStyle()
		styleCache[cs] = st
	}
	return st.Render(text)
}
