package engine

import (
	"strings"
	"unicode/utf8"
)

// Attrs carries node attributes for IsActive queries.
type Attrs map[string]any

// State is an immutable snapshot of the editor.
type State struct {
	Doc       *Doc
	Selection Selection
	Focused   bool

	schema      *Schema
	storedMarks MarkSet
	hasStored   bool
}

// Schema returns the schema the state was built with.
func (s State) Schema() *Schema {
	return s.schema
}

// StoredMarks returns marks that the next typed text will receive, if set.
func (s State) StoredMarks() (MarkSet, bool) {
	return s.storedMarks, s.hasStored
}

// NodeBefore returns the text node directly before the selection start,
// cut at the cursor. It reports false at the start of a block. Only the
// runs of the cursor's block are inspected.
func (s State) NodeBefore() (Text, bool) {
	from := s.Selection.From()
	b := s.Doc.Block(from.Block)
	if b == nil || from.Offset == 0 {
		return Text{}, false
	}
	pos := 0
	for _, run := range b.Content {
		n := utf8.RuneCountInString(run.Text)
		if from.Offset <= pos+n {
			cut := from.Offset - pos
			if cut == n {
				return run, true
			}
			return Text{Text: string([]rune(run.Text)[:cut]), Marks: run.Marks}, true
		}
		pos += n
	}
	return Text{}, false
}

// Marks returns the marks at the cursor: stored marks when present,
// otherwise the marks of the run before the cursor, or of the run after it at
// the start of a block.
func (s State) Marks() MarkSet {
	if s.hasStored {
		return s.storedMarks
	}
	head := s.Selection.Head
	b := s.Doc.Block(head.Block)
	if b == nil || len(b.Content) == 0 || !s.schema.AllowsMarks(b.Type) {
		return nil
	}
	if head.Offset == 0 {
		return b.Content[0].Marks
	}
	pos := 0
	for _, run := range b.Content {
		n := utf8.RuneCountInString(run.Text)
		if head.Offset > pos && head.Offset <= pos+n {
			return run.Marks
		}
		pos += n
	}
	return nil
}

// TextBetween returns the text in [from, to), blocks separated by newlines.
func (s State) TextBetween(from, to Pos) string {
	if ComparePos(from, to) >= 0 {
		return ""
	}
	var sb strings.Builder
	for i := from.Block; i <= to.Block && i < len(s.Doc.Blocks); i++ {
		rs := []rune(s.Doc.Blocks[i].TextContent())
		start, end := 0, len(rs)
		if i == from.Block {
			start = min(from.Offset, len(rs))
		}
		if i == to.Block {
			end = min(to.Offset, len(rs))
		}
		if i > from.Block {
			sb.WriteByte('\n')
		}
		if start < end {
			sb.WriteString(string(rs[start:end]))
		}
	}
	return sb.String()
}

// SelectedText returns the text covered by the selection.
func (s State) SelectedText() string {
	return s.TextBetween(s.Selection.From(), s.Selection.To())
}

// IsActive reports whether the named mark or node applies to the whole
// selection. Heading queries may narrow by a "level" attribute.
func (s State) IsActive(name string, attrs Attrs) bool {
	if _, ok := s.schema.Mark(MarkType(name)); ok {
		return s.markActive(MarkType(name))
	}
	from, to := s.Selection.From(), s.Selection.To()
	if s.Doc.Block(from.Block) == nil {
		return false
	}
	match := func(b *Block) bool { return false }
	switch t := NodeType(name); t {
	case NodeParagraph, NodeHeading, NodeCodeBlock:
		match = func(b *Block) bool {
			if b.Type != t {
				return false
			}
			if want, ok := intAttr(attrs["level"]); ok && b.Level != want {
				return false
			}
			if want, ok := attrs["language"].(string); ok && b.Language != want {
				return false
			}
			return true
		}
	case NodeBulletList, NodeOrderedList:
		match = func(b *Block) bool { return b.List == t }
	case NodeListItem:
		match = func(b *Block) bool { return b.List != "" }
	default:
		return false
	}
	for i := from.Block; i <= to.Block; i++ {
		if !match(s.Doc.Blocks[i]) {
			return false
		}
	}
	return true
}

func (s State) markActive(t MarkType) bool {
	if s.Selection.Empty() {
		return s.Marks().Has(t)
	}
	from, to := s.Selection.From(), s.Selection.To()
	total, covered := 0, 0
	for i := from.Block; i <= to.Block && i < len(s.Doc.Blocks); i++ {
		b := s.Doc.Blocks[i]
		if !s.schema.AllowsMarks(b.Type) {
			continue
		}
		start, end := spanInBlock(b, i, from, to)
		pos := 0
		for _, run := range b.Content {
			n := utf8.RuneCountInString(run.Text)
			lo, hi := max(pos, start), min(pos+n, end)
			if lo < hi {
				total += hi - lo
				if run.Marks.Has(t) {
					covered += hi - lo
				}
			}
			pos += n
		}
	}
	return total > 0 && covered == total
}

// spanInBlock clips [from, to) to block i.
func spanInBlock(b *Block, i int, from, to Pos) (int, int) {
	start, end := 0, b.Len()
	if i == from.Block {
		start = min(from.Offset, end)
	}
	if i == to.Block {
		end = min(to.Offset, end)
	}
	if start > end {
		start = end
	}
	return start, end
}

func intAttr(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
