package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/slashpad/internal/engine"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	sidebarWidth    = 12
	minSidebarInner = 40
	maxEditorWidth  = 72
	editorMargin    = 2
	wheelStep       = 3
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

type region struct {
	x0, y0, x1, y1 int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// pageRow is one row of the editor viewport: a document line or a row of a
// floating menu.
type pageRow struct {
	docLine int
	box     *menuBox
	boxRow  int
	x       int
}

// screenHit is a menu item region in screen coordinates.
type screenHit struct {
	region
	menuID string
	index  int
}

// pageLayout records where everything was drawn in the last frame.
type pageLayout struct {
	width   int
	height  int
	sidebar region
	editor  region
	doc     docView
	rows    []pageRow
	scroll  int
	hits    []screenHit
}

// placedBox is a floating menu inserted before document line at.
type placedBox struct {
	at  int
	box menuBox
	x   int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.initErr != nil {
		text := styles.Error.Render(fmt.Sprintf("Error: %s", m.initErr))
		return renderLines(applyWidth([]styledLine{{text: text, raw: true}}, m.width))
	}
	lay := m.measure()
	editorRows := m.editorRows(&lay)
	out := []string{m.renderFrame(lay, editorRows), m.statusLine(lay.width)}
	if m.showFooter {
		out = append(out, m.footerLine(lay.width))
	}
	m.layout = lay
	return strings.Join(out, "\n")
}

func (m *Model) measure() pageLayout {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	bottom := 1
	if m.showFooter {
		bottom++
	}
	innerW := max(width-2, 10)
	innerH := max(height-bottom-2, 2)
	side := sidebarWidth
	if innerW < minSidebarInner {
		side = 0
	}
	mainW := innerW - side
	editorW := max(min(maxEditorWidth, mainW-2*editorMargin), 8)
	left := max((mainW-editorW)/2, 0)
	lay := pageLayout{width: width, height: height}
	if side > 0 {
		lay.sidebar = region{x0: 1, y0: 1, x1: side, y1: 1 + innerH}
	}
	lay.editor = region{
		x0: 1 + side + left,
		y0: 2,
		x1: 1 + side + left + editorW,
		y1: 1 + innerH,
	}
	return lay
}

// editorRows lays out the document with its floating menus and returns the
// visible rows, each exactly the editor width.
func (m *Model) editorRows(lay *pageLayout) []string {
	w := lay.editor.x1 - lay.editor.x0
	h := lay.editor.y1 - lay.editor.y0
	if m.editor == nil {
		rows := []string{}
		if m.loading {
			rows = append(rows, fitANSI(styles.Loading.Render("Loading editor…"), w, nil))
		}
		return padRows(rows, w, h)
	}
	st := m.editor.State()
	lay.doc = layoutDoc(st, layoutOptions{
		width:      w,
		caret:      st.Focused && m.focus == focusEditor,
		language:   m.editor.CodeLanguage,
		highlights: m.codeHighlights,
	})
	caretLine := lay.doc.lineOf(st.Selection.Head)

	var boxes []placedBox
	if m.bubbleVisible() {
		fromLine := max(lay.doc.lineOf(st.Selection.From()), 0)
		bubble := m.renderBubbleMenu()
		x := clampX(lay.doc.columnOf(st.Selection.From()), bubble.width, w)
		boxes = append(boxes, placedBox{at: fromLine, box: bubble, x: x})
		if m.focus == focusDropdown {
			dropdown := m.renderDropdown(w, h-1-len(bubble.lines))
			boxes = append(boxes, placedBox{at: fromLine, box: dropdown, x: x})
		}
	}
	if m.slashVisible() && caretLine >= 0 {
		slash := m.renderSlashMenu(w, h-1)
		x := clampX(lay.doc.columnOf(st.Selection.Head)-1, slash.width, w)
		boxes = append(boxes, placedBox{at: caretLine + 1, box: slash, x: x})
	}
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].at < boxes[j].at })

	lay.rows = lay.rows[:0]
	lo, hi := -1, -1
	mark := func() {
		i := len(lay.rows) - 1
		if lo < 0 || i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	next := 0
	for line := 0; line <= len(lay.doc.lines); line++ {
		for next < len(boxes) && boxes[next].at == line {
			b := &boxes[next].box
			for r := range b.lines {
				lay.rows = append(lay.rows, pageRow{docLine: -1, box: b, boxRow: r, x: boxes[next].x})
				mark()
			}
			next++
		}
		if line < len(lay.doc.lines) {
			lay.rows = append(lay.rows, pageRow{docLine: line})
			if line == caretLine {
				mark()
			}
		}
	}

	lay.scroll = m.scrollFor(len(lay.rows), h, lo, hi)
	end := min(lay.scroll+h, len(lay.rows))
	out := make([]string, 0, h)
	for i := lay.scroll; i < end; i++ {
		row := lay.rows[i]
		y := lay.editor.y0 + len(out)
		if row.box == nil {
			out = append(out, lay.doc.lines[row.docLine].render(w))
			continue
		}
		out = append(out, fitANSI(strings.Repeat(" ", row.x)+row.box.lines[row.boxRow], w, nil))
		for _, hit := range row.box.hits {
			if hit.row != row.boxRow {
				continue
			}
			x0 := lay.editor.x0 + row.x + hit.x0
			lay.hits = append(lay.hits, screenHit{
				region: region{x0: x0, y0: y, x1: lay.editor.x0 + row.x + hit.x1, y1: y + 1},
				menuID: hit.menuID,
				index:  hit.index,
			})
		}
	}
	return padRows(out, w, h)
}

// scrollFor keeps the rows between lo and hi in view while following the
// caret, and clamps manual scrolling otherwise.
func (m *Model) scrollFor(total, h, lo, hi int) int {
	scroll := m.scroll
	if m.follow && lo >= 0 {
		if hi >= scroll+h {
			scroll = hi - h + 1
		}
		if lo < scroll {
			scroll = lo
		}
	}
	scroll = min(scroll, max(total-h, 0))
	scroll = max(scroll, 0)
	m.scroll = scroll
	return scroll
}

func clampX(x, boxWidth, width int) int {
	return max(min(x, width-boxWidth), 0)
}

func padRows(rows []string, width, height int) []string {
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return rows
}

// renderFrame draws the window frame with the sidebar and editor column.
func (m *Model) renderFrame(lay pageLayout, editorRows []string) string {
	innerW := lay.width - 2
	innerH := len(editorRows) + 1
	side := lay.sidebar.x1 - lay.sidebar.x0
	leftPad := lay.editor.x0 - 1 - lay.sidebar.x1
	if side == 0 {
		leftPad = lay.editor.x0 - 1
	}
	rows := make([]string, 0, innerH)
	for r := 0; r < innerH; r++ {
		var sb strings.Builder
		if side > 0 {
			sb.WriteString(fitANSI(m.sidebarRow(r), side-1, nil))
			sb.WriteString(styles.Separator.Render("│"))
		}
		sb.WriteString(strings.Repeat(" ", max(leftPad, 0)))
		if r > 0 {
			sb.WriteString(editorRows[r-1])
		}
		rows = append(rows, fitANSI(sb.String(), innerW, nil))
	}
	return styles.Frame.Render(strings.Join(rows, "\n"))
}

func (m *Model) sidebarRow(r int) string {
	if r != 1 {
		return ""
	}
	dots := []*lipgloss.Style{styles.DotIdle, styles.DotIdle, styles.DotIdle}
	if m.hoverSidebar {
		dots = []*lipgloss.Style{styles.DotRed, styles.DotYellow, styles.DotGreen}
	}
	parts := make([]string, len(dots))
	for i, st := range dots {
		parts[i] = st.Render("●")
	}
	return " " + strings.Join(parts, " ")
}

// statusLine shows the error, the transient info message or a summary of
// the cursor's block and marks.
func (m *Model) statusLine(width int) string {
	var left string
	switch {
	case m.errMsg != "":
		left = styles.Error.Render("Error: " + m.errMsg)
	case m.currentInfo() != "":
		left = styles.Info.Render(m.infoMsg)
	case m.editor != nil:
		left = styles.Status.Render(m.blockSummary())
	}
	right := ""
	if m.editor != nil {
		head := m.editor.State().Selection.Head
		right = styles.Status.Render(fmt.Sprintf("%d:%d", head.Block+1, head.Offset+1))
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return fitANSI(left, width, nil)
	}
	return left + strings.Repeat(" ", gap) + right
}

var markLabels = []struct {
	mark  engine.MarkType
	label string
}{
	{engine.MarkBold, "bold"},
	{engine.MarkItalic, "italic"},
	{engine.MarkStrike, "strike"},
	{engine.MarkCode, "code"},
}

func (m *Model) blockSummary() string {
	var parts []string
	for _, item := range menu.SlashItems() {
		if item.ID != "text" && m.bus.Active(item.Active, item.ActiveAttrs) {
			parts = append(parts, item.Label)
			break
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "Text")
	}
	for _, ml := range markLabels {
		if m.bus.Active(string(ml.mark), nil) {
			parts = append(parts, ml.label)
		}
	}
	if !m.editor.Focused() {
		parts = append(parts, "blurred")
	}
	return strings.Join(parts, " · ")
}

func (m *Model) footerLine(width int) string {
	m.help.Width = width
	return fitANSI(m.help.View(m.helpBindings()), width, nil)
}

// handleMouseMsg tracks sidebar hover, scrolls the editor, places the caret
// and activates menu items.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	lay := m.layout
	if hover := lay.sidebar.contains(ev.X, ev.Y); hover != m.hoverSidebar {
		m.hoverSidebar = hover
		area := ""
		if hover {
			area = "sidebar"
		}
		events.Pointer.Hover(area)
	}
	if m.editor == nil {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.follow = false
		m.scroll = max(m.scroll-wheelStep, 0)
		return nil
	case ev.Button == tea.MouseButtonWheelDown:
		m.follow = false
		m.scroll += wheelStep
		return nil
	case ev.Action == tea.MouseActionRelease:
		m.dragging = false
		return nil
	case ev.Action == tea.MouseActionMotion && m.dragging:
		if pos, ok := m.posAt(ev.X, ev.Y); ok {
			anchor := m.editor.State().Selection.Anchor
			m.editor.SetSelection(engine.Selection{Anchor: anchor, Head: pos})
		}
		return nil
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		for _, hit := range lay.hits {
			if hit.contains(ev.X, ev.Y) {
				return m.clickMenu(hit)
			}
		}
		pos, ok := m.posAt(ev.X, ev.Y)
		if !ok {
			return nil
		}
		m.focus = focusEditor
		m.editor.Focus()
		m.editor.SetSelection(engine.Collapsed(pos))
		m.dragging = true
	}
	return nil
}

func (m *Model) posAt(x, y int) (engine.Pos, bool) {
	lay := m.layout
	if !lay.editor.contains(x, y) {
		return engine.Pos{}, false
	}
	idx := lay.scroll + y - lay.editor.y0
	if idx < 0 || idx >= len(lay.rows) || lay.rows[idx].docLine < 0 {
		return engine.Pos{}, false
	}
	return lay.doc.posAt(lay.rows[idx].docLine, x-lay.editor.x0)
}

func (m *Model) clickMenu(hit screenHit) tea.Cmd {
	switch hit.menuID {
	case menu.SlashID:
		m.slash.Cursor = hit.index
		return m.activateSlash()
	case menu.BubbleID:
		m.bubble.Cursor = hit.index
		item, ok := m.bubble.Current()
		if !ok {
			return nil
		}
		if item.Opens != "" {
			if m.focus == focusDropdown {
				m.closeDropdown()
				m.focus = focusEditor
				return nil
			}
			m.openDropdown()
			return nil
		}
		return m.activate(m.bubble, item, menu.Context{})
	case menu.TurnIntoID:
		m.turnInto.Cursor = hit.index
		item, ok := m.turnInto.Current()
		if !ok {
			return nil
		}
		cmd := m.activate(m.turnInto, item, menu.Context{})
		m.closeDropdown()
		m.focus = focusEditor
		return cmd
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.follow = true
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
