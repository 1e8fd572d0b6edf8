package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/engine"
	"github.com/atomicstack/slashpad/internal/highlight"
)

func newTestEditor(t *testing.T, blocks ...*engine.Block) *engine.Editor {
	t.Helper()
	hl, err := highlight.New("monokai", "javascript")
	if err != nil {
		t.Fatalf("register languages: %v", err)
	}
	ed, err := engine.New(engine.Options{
		Content:     engine.NewDoc(blocks...),
		Highlighter: hl,
		Autofocus:   true,
	})
	if err != nil {
		t.Fatalf("create editor: %v", err)
	}
	return ed
}

// newReadyHarness returns a harness whose editor is already attached.
func newReadyHarness(t *testing.T, blocks ...*engine.Block) *Harness {
	t.Helper()
	m := NewModel(Options{Width: 100, Height: 30})
	m.filterCursor.SetMode(cursor.CursorStatic)
	h := NewHarness(m)
	h.Send(editorReadyMsg{editor: newTestEditor(t, blocks...)})
	return h
}

func typeText(h *Harness, text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(h *Harness, kt tea.KeyType) {
	h.Send(tea.KeyMsg{Type: kt})
}

func alt(h *Harness, r rune) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true})
}

func selectRange(ed *engine.Editor, from, to engine.Pos) {
	ed.SetSelection(engine.Selection{Anchor: from, Head: to})
}
