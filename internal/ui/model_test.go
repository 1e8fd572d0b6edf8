package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/engine"
)

func TestKeysBeforeEditorReadyAreIgnored(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 20, Loader: func() (*engine.Editor, error) {
		t.Fatalf("loader must not run during key handling")
		return nil, nil
	}})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlB})
	alt(h, '1')
	typeText(h, "abc")
	if m.Editor() != nil {
		t.Fatalf("expected no editor before the loader finishes")
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error from a dispatch without editor, got %q", m.errMsg)
	}
	if view := h.View(); !strings.Contains(view, "Loading editor") {
		t.Fatalf("expected loading line, got:\n%s", view)
	}
}

func TestLoaderResultAttachesEditor(t *testing.T) {
	ed := newTestEditor(t, engine.Paragraph(engine.Plain("hello")))
	m := NewModel(Options{Width: 80, Height: 20, Loader: func() (*engine.Editor, error) {
		return ed, nil
	}})
	h := NewHarness(m)
	h.Send(loadEditorCmd(m.loader)())
	if m.Editor() != ed {
		t.Fatalf("expected loader editor to be attached")
	}
	if _, ok := m.bus.Target().Editor(); !ok {
		t.Fatalf("expected bus target to be ready")
	}
	if view := h.View(); !strings.Contains(view, "hello") {
		t.Fatalf("expected document text in view, got:\n%s", view)
	}
}

func TestEditorInitFailureShowsOnlyError(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 20})
	mdl, cmd := m.Update(editorReadyMsg{err: errors.New("no languages")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	got := mdl.(*Model)
	if got.Err() == nil || got.Err().Error() != "no languages" {
		t.Fatalf("expected init error, got %v", got.Err())
	}
	view := got.View()
	if !strings.Contains(view, "Error: no languages") {
		t.Fatalf("expected error in view, got:\n%s", view)
	}
	if strings.Contains(view, "●") || strings.Contains(view, "╭") {
		t.Fatalf("expected nothing but the error, got:\n%s", view)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 90})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 90 {
		t.Fatalf("expected fixed width 90, got %d", m.width)
	}
	if m.height != 40 {
		t.Fatalf("expected height 40, got %d", m.height)
	}
}

func TestCodeHighlightsCachedPerVersion(t *testing.T) {
	h := newReadyHarness(t, engine.CodeBlock("javascript", "const x = 1"))
	m := h.Model()
	first := m.codeHighlights(0)
	if len(first) == 0 {
		t.Fatalf("expected highlight spans")
	}
	m.highlights[0] = nil
	if got := m.codeHighlights(0); got != nil {
		t.Fatalf("expected cached entry to be reused")
	}
	m.editor.Move(engine.MoveDocEnd, false)
	typeText(h, ";")
	if got := m.codeHighlights(0); len(got) == 0 {
		t.Fatalf("expected spans recomputed after an edit")
	}
}
