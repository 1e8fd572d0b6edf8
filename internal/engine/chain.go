package engine

import "strings"

type chainStep struct {
	name string
	run  Command
}

// Chain collects commands and applies them as one transaction.
type Chain struct {
	editor *Editor
	steps  []chainStep
}

// Chain starts a command chain.
func (e *Editor) Chain() *Chain {
	return &Chain{editor: e}
}

// Command appends a custom step.
func (c *Chain) Command(name string, cmd Command) *Chain {
	c.steps = append(c.steps, chainStep{name: name, run: cmd})
	return c
}

// Focus gives the editable surface input focus.
func (c *Chain) Focus() *Chain { return c.Command("focus", focusCommand) }

func (c *Chain) ToggleBold() *Chain   { return c.ToggleMark(MarkBold) }
func (c *Chain) ToggleItalic() *Chain { return c.ToggleMark(MarkItalic) }
func (c *Chain) ToggleStrike() *Chain { return c.ToggleMark(MarkStrike) }
func (c *Chain) ToggleCode() *Chain   { return c.ToggleMark(MarkCode) }

// ToggleMark toggles an arbitrary mark type.
func (c *Chain) ToggleMark(t MarkType) *Chain {
	return c.Command("toggleMark:"+string(t), toggleMark(t))
}

// ToggleHeading toggles a heading of the given level.
func (c *Chain) ToggleHeading(level int) *Chain {
	return c.Command("toggleHeading", toggleHeading(level))
}

func (c *Chain) ToggleBulletList() *Chain {
	return c.Command("toggleBulletList", toggleList(NodeBulletList))
}

func (c *Chain) ToggleOrderedList() *Chain {
	return c.Command("toggleOrderedList", toggleList(NodeOrderedList))
}

func (c *Chain) ToggleCodeBlock() *Chain {
	return c.Command("toggleCodeBlock", toggleCodeBlock)
}

func (c *Chain) SetParagraph() *Chain {
	return c.Command("setParagraph", setParagraph)
}

// DeleteRange removes the content between two positions.
func (c *Chain) DeleteRange(from, to Pos) *Chain {
	return c.Command("deleteRange", deleteRangeCommand(from, to))
}

// SetTextSelection moves the selection.
func (c *Chain) SetTextSelection(sel Selection) *Chain {
	return c.Command("setTextSelection", setSelectionCommand(sel))
}

// Steps lists the step names queued so far.
func (c *Chain) Steps() []string {
	names := make([]string, len(c.steps))
	for i, s := range c.steps {
		names[i] = s.name
	}
	return names
}

// Run applies every step. The first failing step aborts the chain, leaving
// the editor untouched, and its error is returned as is.
func (c *Chain) Run() error {
	tr := newTransaction(c.editor.state, strings.Join(c.Steps(), "."))
	for _, step := range c.steps {
		if err := step.run(tr); err != nil {
			return err
		}
	}
	c.editor.apply(tr)
	return nil
}
