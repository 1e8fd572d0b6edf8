package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/engine"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
)

// Editor is the part of the editing engine commands run against.
type Editor interface {
	Chain() *engine.Chain
	IsActive(name string, attrs engine.Attrs) bool
}

// Target holds the editor commands dispatch to. It is empty until the
// engine has finished initialising.
type Target struct {
	editor Editor
}

// None is the target before an editor exists.
func None() Target {
	return Target{}
}

// Ready wraps an initialised editor.
func Ready(ed Editor) Target {
	return Target{editor: ed}
}

// Editor returns the wrapped editor, if any.
func (t Target) Editor() (Editor, bool) {
	return t.editor, t.editor != nil
}

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
}

// Bus coordinates the execution of formatting commands.
type Bus struct {
	target Target
}

// New initialises a command bus with no editor attached.
func New() *Bus {
	return &Bus{target: None()}
}

// Attach sets the dispatch target.
func (b *Bus) Attach(t Target) {
	b.target = t
}

// Target returns the current dispatch target.
func (b *Bus) Target() Target {
	return b.target
}

// run focuses the editor and applies build's steps as one chain. Without
// an editor it does nothing. Engine errors come back untouched.
func (b *Bus) run(id, label string, build func(*engine.Chain) *engine.Chain) error {
	events.Command.Queue(id, label)
	ed, ok := b.target.Editor()
	if !ok {
		events.Command.Skip(id, label)
		return nil
	}
	err := build(ed.Chain().Focus()).Run()
	events.Command.Result(id, label, err)
	return err
}

// ToggleBold toggles the bold mark over the selection.
func (b *Bus) ToggleBold() error {
	return b.run("bold", "Bold", (*engine.Chain).ToggleBold)
}

// ToggleItalic toggles the italic mark over the selection.
func (b *Bus) ToggleItalic() error {
	return b.run("italic", "Italic", (*engine.Chain).ToggleItalic)
}

// ToggleStrike toggles the strike mark over the selection.
func (b *Bus) ToggleStrike() error {
	return b.run("strike", "Strike", (*engine.Chain).ToggleStrike)
}

// ToggleCode toggles the inline code mark over the selection.
func (b *Bus) ToggleCode() error {
	return b.run("code", "Code", (*engine.Chain).ToggleCode)
}

// ToggleHeading turns the selected blocks into headings of level, or back
// into paragraphs when they already are.
func (b *Bus) ToggleHeading(level int) error {
	return b.run(fmt.Sprintf("heading%d", level), fmt.Sprintf("Header %d", level), func(c *engine.Chain) *engine.Chain {
		return c.ToggleHeading(level)
	})
}

// ToggleBulletList wraps the selected blocks in a bulleted list or lifts
// them out of one.
func (b *Bus) ToggleBulletList() error {
	return b.run("bullet-list", "Bulleted list", (*engine.Chain).ToggleBulletList)
}

// ToggleOrderedList wraps the selected blocks in a numbered list or lifts
// them out of one.
func (b *Bus) ToggleOrderedList() error {
	return b.run("ordered-list", "Numbered list", (*engine.Chain).ToggleOrderedList)
}

// ToggleCodeBlock switches the selected blocks between code and paragraph.
func (b *Bus) ToggleCodeBlock() error {
	return b.run("code-block", "Code block", (*engine.Chain).ToggleCodeBlock)
}

// Active reports whether a mark or node is active at the selection. It is
// false while no editor is attached.
func (b *Bus) Active(name string, attrs engine.Attrs) bool {
	ed, ok := b.target.Editor()
	if !ok {
		return false
	}
	return ed.IsActive(name, attrs)
}

// Execute runs a menu action against the editor and reports the outcome as
// a menu.ActionResult message. The chain runs before Execute returns; only
// the result is delivered later. Presentational items and a missing editor
// produce no command.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	if req.Handler == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	if _, ok := b.target.Editor(); !ok {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	err := b.run(req.ID, req.Label, func(c *engine.Chain) *engine.Chain {
		return req.Handler(ctx, c)
	})
	result := menu.ActionResult{ID: req.ID, Label: req.Label, Err: err}
	if err == nil {
		result.Info = req.Label
	}
	return func() tea.Msg { return result }
}
