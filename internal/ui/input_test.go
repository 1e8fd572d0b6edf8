package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/engine"
)

func openTestDropdown(t *testing.T) *Harness {
	t.Helper()
	h := newReadyHarness(t, engine.Paragraph(engine.Plain("hello world")))
	m := h.Model()
	selectRange(m.editor, engine.Pos{}, engine.Pos{Offset: 5})
	press(h, tea.KeyTab)
	press(h, tea.KeyEnter)
	if m.focus != focusDropdown {
		t.Fatalf("expected dropdown focus")
	}
	return h
}

func TestFilterTypingDoesNotEditDocument(t *testing.T) {
	h := openTestDropdown(t)
	m := h.Model()
	typeText(h, "head")
	if m.turnInto.Filter != "head" {
		t.Fatalf("expected filter head, got %q", m.turnInto.Filter)
	}
	if got := m.editor.State().Doc.Text(); got != "hello world" {
		t.Fatalf("expected document untouched, got %q", got)
	}
	for _, item := range m.turnInto.Items {
		if !strings.HasPrefix(item.Label, "Header") {
			t.Fatalf("unexpected match %q", item.Label)
		}
	}
}

func TestFilterEditingKeys(t *testing.T) {
	h := openTestDropdown(t)
	m := h.Model()
	typeText(h, "code block")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.turnInto.Filter != "code " {
		t.Fatalf("expected word deleted, got %q", m.turnInto.Filter)
	}
	press(h, tea.KeyBackspace)
	if m.turnInto.Filter != "code" {
		t.Fatalf("expected rune deleted, got %q", m.turnInto.Filter)
	}
	press(h, tea.KeyLeft)
	if pos := m.turnInto.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected filter cursor at 3, got %d", pos)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.turnInto.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", m.turnInto.Filter)
	}
	if len(m.turnInto.Items) != len(m.turnInto.Full) {
		t.Fatalf("expected all items after clearing, got %d", len(m.turnInto.Items))
	}
}

func TestFilterWithoutMatches(t *testing.T) {
	h := openTestDropdown(t)
	m := h.Model()
	typeText(h, "zzz")
	if len(m.turnInto.Items) != 0 {
		t.Fatalf("expected no matches, got %d", len(m.turnInto.Items))
	}
	if view := h.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected empty-state message, got:\n%s", view)
	}
	press(h, tea.KeyEnter)
	if m.focus != focusDropdown {
		t.Fatalf("expected enter on an empty list to keep the dropdown open")
	}
}

func TestDropdownMarksActiveBlockType(t *testing.T) {
	h := openTestDropdown(t)
	view := h.View()
	if !strings.Contains(view, "✓") {
		t.Fatalf("expected active block type checked, got:\n%s", view)
	}
}
