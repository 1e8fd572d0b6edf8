package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/slashpad/internal/format/table"
	"github.com/atomicstack/slashpad/internal/menu"
	"github.com/atomicstack/slashpad/internal/theme"
)

const (
	slashMenuWidth = 66
	dropdownWidth  = 32
	iconWidth      = 3
)

// menuHit is a clickable item region relative to the top-left of its box.
type menuHit struct {
	menuID string
	index  int
	row    int
	x0     int
	x1     int
}

// menuBox is a rendered floating menu.
type menuBox struct {
	id    string
	lines []string
	width int
	hits  []menuHit
}

// fitANSI truncates or pads s to exactly width columns. Padding is drawn
// with pad when it is non-nil.
func fitANSI(s string, width int, pad *lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if gap := width - ansi.StringWidth(s); gap > 0 {
		fill := strings.Repeat(" ", gap)
		if pad != nil {
			fill = pad.Render(fill)
		}
		s += fill
	}
	return s
}

func boxed(inner []string) []string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.MenuBorder).
		BorderBackground(theme.Zinc800)
	return strings.Split(border.Render(strings.Join(inner, "\n")), "\n")
}

func renderIcon(icon string, style *lipgloss.Style) string {
	return style.Render(" " + fitANSI(icon, iconWidth, nil) + " ")
}

// menuHeader renders a level's title as the small caps line atop a box.
func menuHeader(l *level, inner int) string {
	return fitANSI(styles.ItemDescription.Render(" "+strings.ToUpper(l.Title)), inner, styles.Item)
}

// visibleItems scrolls l so its cursor fits in maxRows rows less the box
// chrome and returns the range of items to draw. It records the window
// size for paging.
func (m *Model) visibleItems(l *level, maxRows, chrome int) (int, int) {
	start, end := l.Window(max(maxRows-chrome, 1))
	if m.menuRows == nil {
		m.menuRows = make(map[string]int)
	}
	m.menuRows[l.ID] = end - start
	return start, end
}

// renderSlashMenu draws the block insertion list, clipped to maxRows rows
// including its border and header.
func (m *Model) renderSlashMenu(maxWidth, maxRows int) menuBox {
	width := min(slashMenuWidth, maxWidth)
	inner := width - 2
	box := menuBox{id: menu.SlashID, width: width}
	lines := []string{menuHeader(m.slash, inner)}
	cols := make([][]string, len(m.slash.Items))
	for i, item := range m.slash.Items {
		cols[i] = []string{item.Label, item.Shortcut}
	}
	labels := table.Format(cols, []table.Alignment{table.AlignLeft, table.AlignRight}, 2)
	start, end := m.visibleItems(m.slash, maxRows, 3)
	for i := start; i < end; i++ {
		item := m.slash.Items[i]
		rowStyle, iconStyle, descStyle := styles.Item, styles.ItemIcon, styles.ItemDescription
		if i == m.slash.Cursor {
			rowStyle, iconStyle, descStyle = styles.SelectedItem, styles.SelectedItemIcon, styles.SelectedItem
		}
		row := renderIcon(item.Icon, iconStyle) +
			rowStyle.Render(" "+labels[i]+"  ") +
			descStyle.Render(item.Description)
		lines = append(lines, fitANSI(row, inner, rowStyle))
		box.hits = append(box.hits, menuHit{menuID: menu.SlashID, index: i, row: len(lines), x0: 1, x1: width - 1})
	}
	box.lines = boxed(lines)
	return box
}

// renderBubbleMenu draws the formatting button bar.
func (m *Model) renderBubbleMenu() menuBox {
	box := menuBox{id: menu.BubbleID}
	sep := styles.Separator.Copy().Background(theme.Zinc800).Render("│")
	var sb strings.Builder
	x := 1
	for i, item := range m.bubble.Items {
		if i > 0 {
			sb.WriteString(sep)
			x++
		}
		label := bubbleLabel(item)
		style := styles.Item
		switch {
		case m.focus != focusEditor && i == m.bubble.Cursor:
			style = styles.FocusedButton
		case item.Active != "" && m.bus.Active(item.Active, item.ActiveAttrs):
			style = styles.Pressed
		}
		btn := buttonStyle(style, item)
		sb.WriteString(btn.Render(label))
		w := ansi.StringWidth(label)
		box.hits = append(box.hits, menuHit{menuID: menu.BubbleID, index: i, row: 1, x0: x, x1: x + w})
		x += w
	}
	box.lines = boxed([]string{sb.String()})
	box.width = x + 1
	return box
}

func bubbleLabel(item menu.Item) string {
	switch item.ID {
	case "turn-into":
		return " " + item.Label + " " + item.Icon + " "
	case "comment":
		return " " + item.Icon + " " + item.Label + " "
	}
	return " " + item.Icon + " "
}

// buttonStyle previews a mark on its own toggle button.
func buttonStyle(base *lipgloss.Style, item menu.Item) lipgloss.Style {
	st := base.Copy()
	switch item.ID {
	case "bold":
		st = st.Bold(true)
	case "italic":
		st = st.Italic(true)
	case "strike":
		st = st.Strikethrough(true)
	}
	return st
}

// renderDropdown draws the turn-into list under its title and filter line,
// clipped to maxRows rows.
func (m *Model) renderDropdown(maxWidth, maxRows int) menuBox {
	width := min(dropdownWidth, maxWidth)
	inner := width - 2
	box := menuBox{id: menu.TurnIntoID, width: width}
	lines := []string{
		menuHeader(m.turnInto, inner),
		fitANSI(m.filterPrompt(m.turnInto), inner, styles.Filter),
	}
	if len(m.turnInto.Items) == 0 {
		msg := fmt.Sprintf(" No matches for %q", m.turnInto.Filter)
		lines = append(lines, fitANSI(styles.ItemDescription.Render(msg), inner, styles.Item))
	}
	start, end := m.visibleItems(m.turnInto, maxRows, 4)
	for i := start; i < end; i++ {
		item := m.turnInto.Items[i]
		rowStyle, iconStyle := styles.Item, styles.ItemIcon
		if i == m.turnInto.Cursor {
			rowStyle, iconStyle = styles.SelectedItem, styles.SelectedItemIcon
		}
		check := "  "
		if item.Active != "" && m.bus.Active(item.Active, item.ActiveAttrs) {
			check = " ✓"
		}
		label := fitANSI(rowStyle.Render(" "+item.Label), inner-iconWidth-2-2, rowStyle)
		row := renderIcon(item.Icon, iconStyle) + label + styles.Pressed.Render(check)
		lines = append(lines, fitANSI(row, inner, rowStyle))
		box.hits = append(box.hits, menuHit{menuID: menu.TurnIntoID, index: i, row: len(lines), x0: 1, x1: width - 1})
	}
	box.lines = boxed(lines)
	return box
}
