package state

import (
	"testing"

	"github.com/atomicstack/slashpad/internal/menu"
)

func TestNewLevelStartsAtTop(t *testing.T) {
	l := NewLevel(menu.SlashID, "Basic blocks", menu.SlashItems())
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	item, ok := l.Current()
	if !ok || item.ID != "text" {
		t.Fatalf("expected text item first, got %+v", item)
	}
}

func TestStepWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.Step(-1) || l.Cursor != 2 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	if !l.Step(1) || l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}
	if !l.Step(4) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.Step(1) {
		t.Fatalf("expected no movement for empty level")
	}
	if _, ok := empty.Current(); ok {
		t.Fatalf("expected no current item for empty level")
	}
}

func TestResetClearsFilter(t *testing.T) {
	l := NewLevel(menu.TurnIntoID, "Turn into", menu.TurnIntoItems())
	l.InsertFilterText("head")
	l.Cursor = 2
	l.Reset()
	if l.Filter != "" || l.FilterCursor != 0 {
		t.Fatalf("expected filter cleared, got %q/%d", l.Filter, l.FilterCursor)
	}
	if l.Cursor != 0 || len(l.Items) != len(menu.TurnIntoItems()) {
		t.Fatalf("expected full list at top, got cursor %d with %d items", l.Cursor, len(l.Items))
	}
}

func TestIndexOfResolvesSuffix(t *testing.T) {
	l := NewLevel(menu.SlashID, "Basic blocks", menu.SlashItems())
	if idx := l.IndexOf("slash:heading2"); idx != 2 {
		t.Fatalf("expected heading2 at 2, got %d", idx)
	}
	if idx := l.IndexOf("missing"); idx != -1 {
		t.Fatalf("expected -1 for unknown id, got %d", idx)
	}
}
