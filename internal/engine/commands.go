package engine

import (
	"errors"
	"fmt"
)

// ErrCommandRejected reports that a command cannot apply at the selection.
var ErrCommandRejected = errors.New("command not applicable")

func rejected(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrCommandRejected)
}

// Command is one step of a chain. It mutates the transaction or returns an
// error, in which case the whole chain is discarded.
type Command func(tr *Transaction) error

func focusCommand(tr *Transaction) error {
	tr.focused = true
	return nil
}

// toggleMark removes t when it covers the whole selection and adds it
// otherwise. A collapsed selection toggles the stored marks instead.
func toggleMark(t MarkType) Command {
	return func(tr *Transaction) error {
		if _, ok := tr.schema.Mark(t); !ok {
			return rejected("toggle %s: unknown mark", t)
		}
		st := tr.State()
		if tr.sel.Empty() {
			b := tr.doc.Block(tr.sel.Head.Block)
			if b == nil || !tr.schema.AllowsMarks(b.Type) {
				return rejected("toggle %s: marks are not allowed in %s", t, blockName(b))
			}
			marks := st.Marks()
			if marks.Has(t) {
				tr.setStoredMarks(marks.Remove(t))
			} else {
				tr.setStoredMarks(tr.schema.AddMark(marks, t))
			}
			return nil
		}
		active := st.markActive(t)
		from, to := tr.sel.From(), tr.sel.To()
		applicable := false
		for i := from.Block; i <= to.Block; i++ {
			b := tr.doc.Blocks[i]
			if !tr.schema.AllowsMarks(b.Type) {
				continue
			}
			applicable = true
			start, end := spanInBlock(b, i, from, to)
			if start == end {
				continue
			}
			b.Content = mapRuns(b.Content, start, end, func(set MarkSet) MarkSet {
				if active {
					return set.Remove(t)
				}
				return tr.schema.AddMark(set, t)
			})
		}
		if !applicable {
			return rejected("toggle %s: selection has no markable text", t)
		}
		tr.changed()
		return nil
	}
}

// toggleHeading turns the selected blocks into headings of level, or back
// into paragraphs when they already are.
func toggleHeading(level int) Command {
	return func(tr *Transaction) error {
		if !tr.schema.HasHeadingLevel(level) {
			return rejected("toggle heading: invalid level %d", level)
		}
		first, last := tr.selectedBlocks()
		all := true
		for i := first; i <= last; i++ {
			b := tr.doc.Blocks[i]
			if b.Type != NodeHeading || b.Level != level {
				all = false
				break
			}
		}
		for i := first; i <= last; i++ {
			b := tr.doc.Blocks[i]
			if all {
				b.Type, b.Level = NodeParagraph, 0
				continue
			}
			b.Type, b.Level, b.Language, b.List = NodeHeading, level, "", ""
		}
		tr.changed()
		return nil
	}
}

// toggleList moves the selected blocks into a list of kind, switching list
// kinds as needed, or out of it when every block is already a member.
func toggleList(kind NodeType) Command {
	return func(tr *Transaction) error {
		if kind != NodeBulletList && kind != NodeOrderedList {
			return rejected("toggle list: unknown list type %s", kind)
		}
		first, last := tr.selectedBlocks()
		all := true
		for i := first; i <= last; i++ {
			if tr.doc.Blocks[i].List != kind {
				all = false
				break
			}
		}
		for i := first; i <= last; i++ {
			b := tr.doc.Blocks[i]
			if all {
				b.List = ""
				continue
			}
			if b.Type != NodeParagraph {
				b.Type, b.Level, b.Language = NodeParagraph, 0, ""
			}
			b.List = kind
		}
		tr.changed()
		return nil
	}
}

// toggleCodeBlock converts between code blocks and paragraphs.
func toggleCodeBlock(tr *Transaction) error {
	first, last := tr.selectedBlocks()
	all := true
	for i := first; i <= last; i++ {
		if tr.doc.Blocks[i].Type != NodeCodeBlock {
			all = false
			break
		}
	}
	for i := first; i <= last; i++ {
		b := tr.doc.Blocks[i]
		if all {
			b.Type, b.Language = NodeParagraph, ""
			continue
		}
		b.Type, b.Level, b.List = NodeCodeBlock, 0, ""
		b.Content = stripMarks(b.Content)
	}
	tr.clearStoredMarks()
	tr.changed()
	return nil
}

// setParagraph turns the selected blocks into paragraphs, keeping lists.
func setParagraph(tr *Transaction) error {
	first, last := tr.selectedBlocks()
	for i := first; i <= last; i++ {
		b := tr.doc.Blocks[i]
		b.Type, b.Level, b.Language = NodeParagraph, 0, ""
	}
	tr.changed()
	return nil
}

func deleteRangeCommand(from, to Pos) Command {
	return func(tr *Transaction) error {
		if tr.doc.Block(from.Block) == nil || tr.doc.Block(to.Block) == nil {
			return rejected("delete range: position out of range")
		}
		tr.deleteRange(from, to)
		return nil
	}
}

func setSelectionCommand(sel Selection) Command {
	return func(tr *Transaction) error {
		tr.SetSelection(sel)
		return nil
	}
}

func blockName(b *Block) string {
	if b == nil {
		return "nothing"
	}
	return string(b.Type)
}
