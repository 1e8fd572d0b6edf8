package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/engine"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.editor == nil {
		// Shortcuts still reach the dispatcher, which ignores them until
		// the editor exists.
		return m.handleShortcut(keyMsg)
	}
	m.clearInfo()
	switch m.focus {
	case focusDropdown:
		return m.handleDropdownKey(keyMsg)
	case focusBubble:
		return m.handleBubbleKey(keyMsg)
	}
	return m.handleEditorKey(keyMsg)
}

// handleShortcut runs formatting shortcuts through the dispatcher. It
// returns nil for keys that are not shortcuts.
func (m *Model) handleShortcut(msg tea.KeyMsg) tea.Cmd {
	var run func() error
	k := m.keys
	switch {
	case key.Matches(msg, k.Bold):
		run = m.bus.ToggleBold
	case key.Matches(msg, k.Italic):
		run = m.bus.ToggleItalic
	case key.Matches(msg, k.Strike):
		run = m.bus.ToggleStrike
	case key.Matches(msg, k.Code):
		run = m.bus.ToggleCode
	case key.Matches(msg, k.Heading1):
		run = func() error { return m.bus.ToggleHeading(1) }
	case key.Matches(msg, k.Heading2):
		run = func() error { return m.bus.ToggleHeading(2) }
	case key.Matches(msg, k.Heading3):
		run = func() error { return m.bus.ToggleHeading(3) }
	case key.Matches(msg, k.BulletList):
		run = m.bus.ToggleBulletList
	case key.Matches(msg, k.OrderedList):
		run = m.bus.ToggleOrderedList
	case key.Matches(msg, k.CodeBlock):
		run = m.bus.ToggleCodeBlock
	default:
		return nil
	}
	m.reportCommand(run())
	return nil
}

// isShortcut reports whether msg is bound to a formatting command.
func (m *Model) isShortcut(msg tea.KeyMsg) bool {
	k := m.keys
	return key.Matches(msg, k.Bold, k.Italic, k.Strike, k.Code,
		k.Heading1, k.Heading2, k.Heading3, k.BulletList, k.OrderedList, k.CodeBlock)
}

func (m *Model) reportCommand(err error) {
	if err != nil {
		m.errMsg = err.Error()
		m.forceClearInfo()
		events.Action.Error(err)
		logging.Error(err)
		return
	}
	m.errMsg = ""
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	ed := m.editor
	k := m.keys
	if m.isShortcut(msg) {
		return m.handleShortcut(msg)
	}
	switch {
	case key.Matches(msg, k.Undo):
		events.Editor.History("undo", ed.Undo())
		return nil
	case key.Matches(msg, k.Redo):
		events.Editor.History("redo", ed.Redo())
		return nil
	}
	if m.slashVisible() {
		switch {
		case key.Matches(msg, k.MenuUp):
			m.stepLevel(m.slash, -1)
			return nil
		case key.Matches(msg, k.MenuDown):
			m.stepLevel(m.slash, 1)
			return nil
		case key.Matches(msg, k.MenuActivate):
			return m.activateSlash()
		case key.Matches(msg, k.MenuHome, k.MenuEnd, k.MenuPageUp, k.MenuPageDown):
			m.jumpLevel(m.slash, msg)
			return nil
		}
	}
	if m.bubbleVisible() && key.Matches(msg, k.FocusBubble) {
		m.focus = focusBubble
		m.bubble.Reset()
		events.Menu.Focus(menu.BubbleID, true)
		return nil
	}
	if key.Matches(msg, k.Blur) {
		st := ed.State()
		if !st.Selection.Empty() {
			ed.SetSelection(engine.Collapsed(st.Selection.Head))
			return nil
		}
		ed.Blur()
		return nil
	}
	m.editText(msg)
	return nil
}

// editText applies an editing key to the engine.
func (m *Model) editText(msg tea.KeyMsg) {
	ed := m.editor
	events.Editor.Input(msg.String())
	if !ed.Focused() {
		ed.Focus()
	}
	if key.Matches(msg, m.keys.SelectAll) {
		ed.SelectAll()
		return
	}
	switch msg.String() {
	case "left":
		ed.Move(engine.MoveLeft, false)
		return
	case "right":
		ed.Move(engine.MoveRight, false)
		return
	case "up":
		ed.Move(engine.MoveUp, false)
		return
	case "down":
		ed.Move(engine.MoveDown, false)
		return
	case "shift+left":
		ed.Move(engine.MoveLeft, true)
		return
	case "shift+right":
		ed.Move(engine.MoveRight, true)
		return
	case "shift+up":
		ed.Move(engine.MoveUp, true)
		return
	case "shift+down":
		ed.Move(engine.MoveDown, true)
		return
	case "ctrl+left", "alt+left", "alt+b":
		ed.Move(engine.MoveWordLeft, false)
		return
	case "ctrl+right", "alt+right", "alt+f":
		ed.Move(engine.MoveWordRight, false)
		return
	case "ctrl+shift+left":
		ed.Move(engine.MoveWordLeft, true)
		return
	case "ctrl+shift+right":
		ed.Move(engine.MoveWordRight, true)
		return
	case "home":
		ed.Move(engine.MoveLineStart, false)
		return
	case "end", "ctrl+e":
		ed.Move(engine.MoveLineEnd, false)
		return
	case "shift+home":
		ed.Move(engine.MoveLineStart, true)
		return
	case "shift+end":
		ed.Move(engine.MoveLineEnd, true)
		return
	case "ctrl+home":
		ed.Move(engine.MoveDocStart, false)
		return
	case "ctrl+end":
		ed.Move(engine.MoveDocEnd, false)
		return
	case "ctrl+shift+home":
		ed.Move(engine.MoveDocStart, true)
		return
	case "ctrl+shift+end":
		ed.Move(engine.MoveDocEnd, true)
		return
	}
	switch msg.Type {
	case tea.KeyEnter:
		ed.SplitBlock()
	case tea.KeyBackspace, tea.KeyCtrlH:
		ed.DeleteBackward()
	case tea.KeyDelete:
		ed.DeleteForward()
	case tea.KeySpace:
		ed.InsertText(" ")
	case tea.KeyTab:
		if ed.IsActive(string(engine.NodeCodeBlock), nil) {
			ed.InsertText("  ")
		}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return
		}
		ed.InsertText(string(msg.Runes))
	}
}

func (m *Model) stepLevel(l *level, delta int) {
	if l.Step(delta) {
		events.Menu.Cursor(l.ID, l.Cursor)
	}
}

// jumpLevel handles the non-wrapping list keys. Paging moves by the number
// of rows the menu showed at the last render.
func (m *Model) jumpLevel(l *level, msg tea.KeyMsg) {
	k := m.keys
	rows := m.menuRows[l.ID]
	var moved bool
	switch {
	case key.Matches(msg, k.MenuHome):
		moved = l.Home()
	case key.Matches(msg, k.MenuEnd):
		moved = l.End()
	case key.Matches(msg, k.MenuPageUp):
		moved = l.PageUp(rows)
	case key.Matches(msg, k.MenuPageDown):
		moved = l.PageDown(rows)
	}
	if moved {
		events.Menu.Cursor(l.ID, l.Cursor)
	}
}

// activateSlash runs the highlighted slash item. The action removes the
// trigger "/" along with applying its block type.
func (m *Model) activateSlash() tea.Cmd {
	item, ok := m.slash.Current()
	if !ok {
		return nil
	}
	ctx := menu.ContextFor(menu.SlashID, m.editor.State())
	return m.activate(m.slash, item, ctx)
}

func (m *Model) handleBubbleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.MenuBack):
		m.focus = focusEditor
		events.Menu.Focus(menu.BubbleID, false)
		return nil
	case key.Matches(msg, k.ButtonLeft):
		m.stepLevel(m.bubble, -1)
		return nil
	case key.Matches(msg, k.ButtonRight):
		m.stepLevel(m.bubble, 1)
		return nil
	case key.Matches(msg, k.MenuActivate), msg.Type == tea.KeySpace:
		item, ok := m.bubble.Current()
		if !ok {
			return nil
		}
		if item.Opens != "" {
			m.openDropdown()
			return nil
		}
		return m.activate(m.bubble, item, menu.Context{})
	}
	if m.isShortcut(msg) {
		return m.handleShortcut(msg)
	}
	return nil
}

func (m *Model) openDropdown() {
	m.turnInto.Reset()
	m.focus = focusDropdown
	m.filterCursorDirty = true
	events.Menu.Dropdown(true)
}

func (m *Model) closeDropdown() {
	if m.focus != focusDropdown {
		return
	}
	m.turnInto.Reset()
	m.focus = focusBubble
	events.Menu.Dropdown(false)
}

func (m *Model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.MenuBack):
		m.closeDropdown()
		return nil
	case key.Matches(msg, k.MenuUp):
		m.stepLevel(m.turnInto, -1)
		return nil
	case key.Matches(msg, k.MenuDown):
		m.stepLevel(m.turnInto, 1)
		return nil
	case key.Matches(msg, k.MenuPageUp, k.MenuPageDown):
		m.jumpLevel(m.turnInto, msg)
		return nil
	case key.Matches(msg, k.MenuActivate):
		item, ok := m.turnInto.Current()
		if !ok {
			return nil
		}
		cmd := m.activate(m.turnInto, item, menu.Context{})
		m.closeDropdown()
		m.focus = focusEditor
		return cmd
	}
	if handled, cmd := m.handleTextInput(msg); handled {
		return cmd
	}
	return nil
}

// activate resolves an item in the registry and executes its action.
func (m *Model) activate(l *level, item menu.Item, ctx menu.Context) tea.Cmd {
	events.Menu.Activate(l.ID, item.ID, item.Label)
	node, ok := m.registry.Child(l.ID, item.ID)
	if !ok || node.Action == nil {
		m.setInfo(item.Label + " has no action")
		return nil
	}
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(ctx, requestFor(node.ID, item, node.Action))
}
