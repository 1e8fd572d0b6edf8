package menu

import "github.com/atomicstack/slashpad/internal/engine"

// ToggleMarkAction toggles an inline mark over the selection.
func ToggleMarkAction(mark engine.MarkType) Action {
	return func(_ Context, chain *engine.Chain) *engine.Chain {
		return chain.ToggleMark(mark)
	}
}
