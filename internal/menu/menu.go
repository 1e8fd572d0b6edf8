package menu

import (
	"github.com/atomicstack/slashpad/internal/engine"
)

// Menu identifiers, also used as registry roots.
const (
	SlashID    = "slash"
	BubbleID   = "bubble"
	TurnIntoID = "bubble:turn-into"
)

// Item represents a selectable menu entry.
type Item struct {
	ID          string
	Label       string
	Description string
	Icon        string
	Shortcut    string
	// Active names the mark or node whose active state renders the item as
	// pressed. Empty for items that never show a pressed state.
	Active      string
	ActiveAttrs engine.Attrs
	// Opens marks items that open a submenu instead of running a command.
	Opens string
}

// Context carries the editor state an action was activated from.
type Context struct {
	Trigger    engine.Range
	HasTrigger bool
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

// Action extends a chain with the item's command. The chain already holds
// the focus step; the caller runs it.
type Action func(Context, *engine.Chain) *engine.Chain

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// SlashItems returns the block insertion menu shown after a lone "/".
func SlashItems() []Item {
	return []Item{
		{ID: "text", Label: "Text", Description: "Just start writing with plain text.", Icon: "¶", Active: "paragraph"},
		{ID: "heading1", Label: "Header 1", Description: "Big section heading.", Icon: "H1", Shortcut: "alt+1", Active: "heading", ActiveAttrs: engine.Attrs{"level": 1}},
		{ID: "heading2", Label: "Header 2", Description: "Medium section heading.", Icon: "H2", Shortcut: "alt+2", Active: "heading", ActiveAttrs: engine.Attrs{"level": 2}},
		{ID: "heading3", Label: "Header 3", Description: "Small section heading.", Icon: "H3", Shortcut: "alt+3", Active: "heading", ActiveAttrs: engine.Attrs{"level": 3}},
		{ID: "bullet-list", Label: "Bulleted list", Description: "Create a simple bulleted list.", Icon: "•", Shortcut: "alt+8", Active: "bulletList"},
		{ID: "ordered-list", Label: "Numbered list", Description: "Create a list with numbering.", Icon: "1.", Shortcut: "alt+7", Active: "orderedList"},
		{ID: "code-block", Label: "Code block", Description: "Capture a code snippet.", Icon: "</>", Shortcut: "alt+c", Active: "codeBlock"},
	}
}

// BubbleItems returns the formatting bubble shown over a text selection.
func BubbleItems() []Item {
	return []Item{
		{ID: "turn-into", Label: "Text", Icon: "▾", Opens: TurnIntoID},
		{ID: "comment", Label: "Comment", Icon: "💬"},
		{ID: "bold", Label: "Bold", Icon: "B", Shortcut: "ctrl+b", Active: "bold"},
		{ID: "italic", Label: "Italic", Icon: "I", Shortcut: "alt+i", Active: "italic"},
		{ID: "strike", Label: "Strike", Icon: "S", Shortcut: "alt+s", Active: "strike"},
		{ID: "code", Label: "Code", Icon: "<>", Shortcut: "alt+e", Active: "code"},
	}
}

// TurnIntoItems returns the block types the bubble dropdown converts to.
func TurnIntoItems() []Item {
	return SlashItems()
}

// CategoryLoaders lists submenu loaders keyed by menu ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		SlashID:    func(Context) ([]Item, error) { return SlashItems(), nil },
		BubbleID:   func(Context) ([]Item, error) { return BubbleItems(), nil },
		TurnIntoID: func(Context) ([]Item, error) { return TurnIntoItems(), nil },
	}
}

// ActionHandlers maps item identifiers to their execution logic. Items
// without an entry are presentational.
func ActionHandlers() map[string]Action {
	handlers := map[string]Action{
		"bubble:bold":   ToggleMarkAction(engine.MarkBold),
		"bubble:italic": ToggleMarkAction(engine.MarkItalic),
		"bubble:strike": ToggleMarkAction(engine.MarkStrike),
		"bubble:code":   ToggleMarkAction(engine.MarkCode),
	}
	for id, action := range blockActions() {
		handlers[SlashID+":"+id] = action
		handlers[TurnIntoID+":"+id] = action
	}
	return handlers
}
