package menu

import "github.com/atomicstack/slashpad/internal/engine"

func blockActions() map[string]Action {
	return map[string]Action{
		"text":         TextAction,
		"heading1":     HeadingAction(1),
		"heading2":     HeadingAction(2),
		"heading3":     HeadingAction(3),
		"bullet-list":  BulletListAction,
		"ordered-list": OrderedListAction,
		"code-block":   CodeBlockAction,
	}
}

// withoutTrigger removes the "/" that opened the menu, so the command and the
// deletion land in one transaction.
func withoutTrigger(ctx Context, chain *engine.Chain) *engine.Chain {
	if !ctx.HasTrigger {
		return chain
	}
	return chain.DeleteRange(ctx.Trigger.From, ctx.Trigger.To)
}

func TextAction(ctx Context, chain *engine.Chain) *engine.Chain {
	return withoutTrigger(ctx, chain).SetParagraph()
}

func HeadingAction(level int) Action {
	return func(ctx Context, chain *engine.Chain) *engine.Chain {
		return withoutTrigger(ctx, chain).ToggleHeading(level)
	}
}

func BulletListAction(ctx Context, chain *engine.Chain) *engine.Chain {
	return withoutTrigger(ctx, chain).ToggleBulletList()
}

func OrderedListAction(ctx Context, chain *engine.Chain) *engine.Chain {
	return withoutTrigger(ctx, chain).ToggleOrderedList()
}

func CodeBlockAction(ctx Context, chain *engine.Chain) *engine.Chain {
	return withoutTrigger(ctx, chain).ToggleCodeBlock()
}
