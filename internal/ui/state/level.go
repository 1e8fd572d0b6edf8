package state

import (
	"strings"

	"github.com/atomicstack/slashpad/internal/menu"
)

// Level holds the interactive state of one menu: the unfiltered and
// filtered items, the highlighted row, the filter text and the first row of
// the visible window.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level showing items.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index of the item with the given ID. Registry paths
// such as "slash:heading2" resolve by their last segment.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		if i := l.IndexOf(id[idx+1:]); i >= 0 {
			return i
		}
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the menu entries and reapplies the filter. The
// visible window is kept when it still fits.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = CloneItems(items)
	l.applyFilter()
	if l.ViewportOffset < 0 || l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// Reset returns the cursor to the first item and clears the filter.
func (l *Level) Reset() {
	l.Filter = ""
	l.FilterCursor = 0
	l.LastCursor = -1
	l.ViewportOffset = 0
	l.applyFilter()
	l.Cursor = 0
}

// Step moves the cursor by delta, wrapping around the ends.
func (l *Level) Step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return old != l.Cursor
}
