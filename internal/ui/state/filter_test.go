package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/slashpad/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := NewLevel(menu.TurnIntoID, "Turn into", menu.TurnIntoItems())
	level.Cursor = 2
	level.SetFilter("code", len("code"))

	if level.Filter != "code" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("code") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "code-block" {
		t.Fatalf("expected filtered items to contain only the code block, got %#v", level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("heading")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}
	if level.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", level.FilterCursor)
	}

	if !level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if level.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if level.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterItemsAndClone(t *testing.T) {
	items := []menu.Item{{ID: "bold", Label: "Bold"}, {ID: "strike", Label: "Strike"}}
	filtered := FilterItems(items, "bol")
	if len(filtered) != 1 || filtered[0].Label != "Bold" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ike")
	if len(filtered) != 1 || filtered[0].Label != "Strike" {
		t.Fatalf("expected contains match for Strike, got %#v", filtered)
	}

	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}

	filtered[0].Label = "changed"
	if items[1].Label != "Strike" {
		t.Fatal("expected original slice to remain unchanged")
	}

	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "text", Label: "Text"},
		{ID: "bullet-list", Label: "Bulleted list"},
		{ID: "code-block", Label: "Code block"},
	}

	if idx := BestMatchIndex(items, "Bulleted list"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "bullet-list"); idx != 1 {
		t.Fatalf("expected ID match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "co"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	items := []menu.Item{{ID: "italic", Label: "Italic"}, {ID: "code", Label: "Code"}}
	level := NewLevel("bubble", "Bubble", items)
	level.SetFilter("itl", 3)
	if level.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first item, got %d", level.Cursor)
	}
	if !reflect.DeepEqual(level.Items, []menu.Item{{ID: "italic", Label: "Italic"}}) {
		t.Fatalf("expected filtered items to contain Italic, got %#v", level.Items)
	}
}

func TestFilterItemsMatchesDescriptionsAndShortcuts(t *testing.T) {
	items := menu.TurnIntoItems()

	headers := FilterItems(items, "heading")
	if len(headers) != 3 {
		t.Fatalf("expected the three header items, got %#v", headers)
	}
	for i, item := range headers {
		if want := []string{"heading1", "heading2", "heading3"}[i]; item.ID != want {
			t.Fatalf("expected %q at %d, got %q", want, i, item.ID)
		}
	}

	snippet := FilterItems(items, "snippet")
	if len(snippet) != 1 || snippet[0].ID != "code-block" {
		t.Fatalf("expected description match on the code block, got %#v", snippet)
	}

	shortcut := FilterItems(items, "alt+7")
	if len(shortcut) != 1 || shortcut[0].ID != "ordered-list" {
		t.Fatalf("expected shortcut match on the numbered list, got %#v", shortcut)
	}
}

func TestSetFilterPrefersLabelOverDescription(t *testing.T) {
	level := NewLevel(menu.TurnIntoID, "Turn into", menu.TurnIntoItems())
	level.SetFilter("text", 4)
	item, ok := level.Current()
	if !ok || item.ID != "text" {
		t.Fatalf("expected Text selected, got %+v", item)
	}
	level.SetFilter("snippet", 7)
	item, _ = level.Current()
	if item.ID != "code-block" {
		t.Fatalf("expected code block selected for a description match, got %q", item.ID)
	}
}
