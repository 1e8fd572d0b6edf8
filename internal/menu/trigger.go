package menu

import "github.com/atomicstack/slashpad/internal/engine"

// SlashTrigger reports whether the text node directly before the cursor is
// exactly "/". It reads the state only.
func SlashTrigger(st engine.State) bool {
	node, ok := st.NodeBefore()
	return ok && node.Text == "/"
}

// SlashTriggerRange returns the range holding the trigger "/".
func SlashTriggerRange(st engine.State) (engine.Range, bool) {
	if !SlashTrigger(st) {
		return engine.Range{}, false
	}
	at := st.Selection.From()
	return engine.Range{
		From: engine.Pos{Block: at.Block, Offset: at.Offset - 1},
		To:   at,
	}, true
}

// BubbleTrigger reports whether the formatting bubble applies: the editor is
// focused and the selection covers some text.
func BubbleTrigger(st engine.State) bool {
	if !st.Focused || st.Selection.Empty() {
		return false
	}
	return st.SelectedText() != ""
}

// ContextFor builds the activation context for a menu.
func ContextFor(menuID string, st engine.State) Context {
	if menuID != SlashID {
		return Context{}
	}
	r, ok := SlashTriggerRange(st)
	return Context{Trigger: r, HasTrigger: ok}
}
