package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the editor page understands.
type keyMap struct {
	Quit key.Binding

	Bold          key.Binding
	Italic        key.Binding
	Strike        key.Binding
	Code          key.Binding
	Heading1      key.Binding
	Heading2      key.Binding
	Heading3      key.Binding
	BulletList    key.Binding
	OrderedList   key.Binding
	CodeBlock     key.Binding
	Undo          key.Binding
	Redo          key.Binding
	SelectAll     key.Binding
	Blur          key.Binding
	FocusBubble   key.Binding
	MenuUp        key.Binding
	MenuDown      key.Binding
	MenuActivate  key.Binding
	MenuHome      key.Binding
	MenuEnd       key.Binding
	MenuPageUp    key.Binding
	MenuPageDown  key.Binding
	ButtonLeft    key.Binding
	ButtonRight   key.Binding
	MenuBack      key.Binding
	FilterClear   key.Binding
	FilterWordDel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Strike:        key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strike")),
		Code:          key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "code")),
		Heading1:      key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "heading 1")),
		Heading2:      key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "heading 2")),
		Heading3:      key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "heading 3")),
		BulletList:    key.NewBinding(key.WithKeys("alt+8"), key.WithHelp("alt+8", "bullets")),
		OrderedList:   key.NewBinding(key.WithKeys("alt+7"), key.WithHelp("alt+7", "numbers")),
		CodeBlock:     key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code block")),
		Undo:          key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:          key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		SelectAll:     key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Blur:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "blur")),
		FocusBubble:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "format")),
		MenuUp:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		MenuDown:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		MenuActivate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		MenuHome:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		MenuEnd:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		MenuPageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		MenuPageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		ButtonLeft:    key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev")),
		ButtonRight:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next")),
		MenuBack:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		FilterClear:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		FilterWordDel: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
	}
}

// bindingSet adapts a flat list of bindings to help.KeyMap.
type bindingSet []key.Binding

func (b bindingSet) ShortHelp() []key.Binding {
	return b
}

func (b bindingSet) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

// helpBindings returns the hints that apply to the current focus.
func (m *Model) helpBindings() bindingSet {
	k := m.keys
	switch {
	case m.editor == nil:
		return bindingSet{k.Quit}
	case m.focus == focusDropdown:
		return bindingSet{k.MenuUp, k.MenuDown, k.MenuPageDown, k.MenuActivate, k.FilterClear, k.MenuBack}
	case m.focus == focusBubble:
		return bindingSet{k.ButtonLeft, k.ButtonRight, k.MenuActivate, k.MenuBack}
	case m.slashVisible():
		return bindingSet{k.MenuUp, k.MenuDown, k.MenuEnd, k.MenuActivate}
	case m.bubbleVisible():
		return bindingSet{k.FocusBubble, k.Bold, k.Italic, k.Strike, k.Code}
	}
	return bindingSet{k.Bold, k.Italic, k.Heading1, k.BulletList, k.CodeBlock, k.Undo, k.Redo, k.Quit}
}
