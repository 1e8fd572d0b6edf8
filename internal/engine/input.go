package engine

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	inputInsertText = "input.insertText"
	inputSplitBlock = "input.splitBlock"
	inputDelete     = "input.delete"
	inputMove       = "input.move"
)

// Motion is a cursor movement.
type Motion int

const (
	MoveLeft Motion = iota
	MoveRight
	MoveUp
	MoveDown
	MoveWordLeft
	MoveWordRight
	MoveLineStart
	MoveLineEnd
	MoveDocStart
	MoveDocEnd
)

type inputRule struct {
	pattern *regexp.Regexp
	apply   func(b *Block, match []string)
}

// Block-start shortcuts matched against the text before the cursor after a
// character is typed into a plain paragraph.
var inputRules = []inputRule{
	{regexp.MustCompile(`^(#{1,6}) $`), func(b *Block, m []string) {
		b.Type, b.Level = NodeHeading, len(m[1])
	}},
	{regexp.MustCompile(`^[-*+] $`), func(b *Block, _ []string) {
		b.List = NodeBulletList
	}},
	{regexp.MustCompile(`^\d+\. $`), func(b *Block, _ []string) {
		b.List = NodeOrderedList
	}},
	{regexp.MustCompile("^```([a-z]+)?[\\s]$"), func(b *Block, m []string) {
		b.Type, b.Language = NodeCodeBlock, m[1]
	}},
}

// InsertText types text at the cursor, replacing any selection.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	tr := newTransaction(e.state, inputInsertText)
	marks := tr.State().Marks()
	tr.deleteSelection()
	tr.insertText(text, marks)
	if len([]rune(text)) == 1 {
		applyInputRules(tr)
	}
	e.apply(tr)
}

func applyInputRules(tr *Transaction) {
	head := tr.sel.Head
	b := tr.doc.Blocks[head.Block]
	if b.Type != NodeParagraph || b.IsListItem() {
		return
	}
	before := string([]rune(b.TextContent())[:head.Offset])
	for _, rule := range inputRules {
		m := rule.pattern.FindStringSubmatch(before)
		if m == nil {
			continue
		}
		rule.apply(b, m)
		if b.Type == NodeCodeBlock {
			b.Content = stripMarks(b.Content)
		}
		tr.deleteRange(Pos{Block: head.Block}, head)
		tr.SetSelection(Collapsed(Pos{Block: head.Block}))
		return
	}
}

// SplitBlock handles Enter. Empty list items leave their list, code blocks
// take a newline (and are exited by a third consecutive Enter at the end),
// and every other block is split at the cursor.
func (e *Editor) SplitBlock() {
	tr := newTransaction(e.state, inputSplitBlock)
	marks := tr.State().Marks()
	tr.deleteSelection()
	head := tr.sel.Head
	b := tr.doc.Blocks[head.Block]
	switch {
	case b.Type == NodeCodeBlock:
		text := b.TextContent()
		if head.Offset == b.Len() && strings.HasSuffix(text, "\n\n") {
			tr.deleteRange(Pos{Block: head.Block, Offset: head.Offset - 2}, head)
			tr.doc.Blocks = insertBlock(tr.doc.Blocks, head.Block+1, Paragraph())
			tr.SetSelection(Collapsed(Pos{Block: head.Block + 1}))
			break
		}
		tr.insertText("\n", nil)
	case b.IsListItem() && b.Len() == 0:
		b.List = ""
		tr.changed()
	default:
		left, right := splitRuns(b.Content, head.Offset)
		next := &Block{Type: b.Type, Level: b.Level, List: b.List, Content: normalizeRuns(right)}
		if head.Offset == b.Len() && b.Type == NodeHeading {
			next.Type, next.Level = NodeParagraph, 0
		}
		b.Content = normalizeRuns(left)
		tr.doc.Blocks = insertBlock(tr.doc.Blocks, head.Block+1, next)
		tr.SetSelection(Collapsed(Pos{Block: head.Block + 1}))
		if len(marks) > 0 {
			tr.setStoredMarks(marks)
		}
		tr.changed()
	}
	e.apply(tr)
}

// DeleteBackward handles Backspace.
func (e *Editor) DeleteBackward() {
	tr := newTransaction(e.state, inputDelete)
	if !tr.deleteSelection() {
		head := tr.sel.Head
		b := tr.doc.Blocks[head.Block]
		switch {
		case head.Offset > 0:
			tr.deleteRange(Pos{Block: head.Block, Offset: prevGrapheme(b.TextContent(), head.Offset)}, head)
		case b.IsListItem():
			b.List = ""
			tr.changed()
		case head.Block == 0:
			if b.Type == NodeParagraph {
				return
			}
			b.Type, b.Level, b.Language = NodeParagraph, 0, ""
			tr.changed()
		default:
			prev := tr.doc.Blocks[head.Block-1]
			tr.deleteRange(Pos{Block: head.Block - 1, Offset: prev.Len()}, head)
		}
	}
	if !tr.docChanged {
		return
	}
	e.apply(tr)
}

// DeleteForward handles Delete.
func (e *Editor) DeleteForward() {
	tr := newTransaction(e.state, inputDelete)
	if !tr.deleteSelection() {
		head := tr.sel.Head
		b := tr.doc.Blocks[head.Block]
		switch {
		case head.Offset < b.Len():
			tr.deleteRange(head, Pos{Block: head.Block, Offset: nextGrapheme(b.TextContent(), head.Offset)})
		case head.Block < len(tr.doc.Blocks)-1:
			tr.deleteRange(head, Pos{Block: head.Block + 1})
		default:
			return
		}
	}
	e.apply(tr)
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.SetSelection(Selection{Anchor: Pos{}, Head: e.state.Doc.End()})
}

// SetSelection moves the selection.
func (e *Editor) SetSelection(sel Selection) {
	tr := newTransaction(e.state, inputMove)
	tr.SetSelection(sel)
	e.apply(tr)
}

// Move moves the cursor. With extend the anchor stays put.
func (e *Editor) Move(motion Motion, extend bool) {
	st := e.state
	sel := st.Selection
	if !extend && !sel.Empty() {
		switch motion {
		case MoveLeft:
			e.SetSelection(Collapsed(sel.From()))
			return
		case MoveRight:
			e.SetSelection(Collapsed(sel.To()))
			return
		}
	}
	tr := newTransaction(st, inputMove)
	head := motionTarget(tr, sel.Head, motion)
	if extend {
		tr.SetSelection(Selection{Anchor: sel.Anchor, Head: head})
	} else {
		tr.SetSelection(Collapsed(head))
	}
	e.apply(tr)
}

func motionTarget(tr *Transaction, p Pos, motion Motion) Pos {
	doc := tr.doc
	b := doc.Blocks[p.Block]
	text := b.TextContent()
	switch motion {
	case MoveLeft:
		if p.Offset > 0 {
			return Pos{Block: p.Block, Offset: prevGrapheme(text, p.Offset)}
		}
		if p.Block > 0 {
			return Pos{Block: p.Block - 1, Offset: doc.Blocks[p.Block-1].Len()}
		}
	case MoveRight:
		if p.Offset < b.Len() {
			return Pos{Block: p.Block, Offset: nextGrapheme(text, p.Offset)}
		}
		if p.Block < len(doc.Blocks)-1 {
			return Pos{Block: p.Block + 1}
		}
	case MoveWordLeft:
		runes := []rune(text)
		i := p.Offset
		for i > 0 && unicode.IsSpace(runes[i-1]) {
			i--
		}
		for i > 0 && !unicode.IsSpace(runes[i-1]) {
			i--
		}
		if i == p.Offset && p.Block > 0 {
			return Pos{Block: p.Block - 1, Offset: doc.Blocks[p.Block-1].Len()}
		}
		return Pos{Block: p.Block, Offset: i}
	case MoveWordRight:
		runes := []rune(text)
		i := p.Offset
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		if i == p.Offset && p.Block < len(doc.Blocks)-1 {
			return Pos{Block: p.Block + 1}
		}
		return Pos{Block: p.Block, Offset: i}
	case MoveUp:
		line, col := lineColumn(text, p.Offset)
		if line > 0 {
			return Pos{Block: p.Block, Offset: offsetAt(text, line-1, col)}
		}
		if p.Block == 0 {
			return Pos{}
		}
		prev := doc.Blocks[p.Block-1].TextContent()
		return Pos{Block: p.Block - 1, Offset: offsetAt(prev, strings.Count(prev, "\n"), col)}
	case MoveDown:
		line, col := lineColumn(text, p.Offset)
		if line < strings.Count(text, "\n") {
			return Pos{Block: p.Block, Offset: offsetAt(text, line+1, col)}
		}
		if p.Block < len(doc.Blocks)-1 {
			return Pos{Block: p.Block + 1, Offset: offsetAt(doc.Blocks[p.Block+1].TextContent(), 0, col)}
		}
		if b.Type == NodeCodeBlock {
			doc.Blocks = append(doc.Blocks, Paragraph())
			tr.changed()
			return Pos{Block: p.Block + 1}
		}
		return Pos{Block: p.Block, Offset: b.Len()}
	case MoveLineStart:
		line, _ := lineColumn(text, p.Offset)
		return Pos{Block: p.Block, Offset: offsetAt(text, line, 0)}
	case MoveLineEnd:
		line, _ := lineColumn(text, p.Offset)
		return Pos{Block: p.Block, Offset: offsetAt(text, line, len(text))}
	case MoveDocStart:
		return Pos{}
	case MoveDocEnd:
		return doc.End()
	}
	return p
}

// lineColumn locates offset within the newline-separated lines of text.
func lineColumn(text string, offset int) (int, int) {
	line, col := 0, 0
	for i, r := range []rune(text) {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// offsetAt converts a line and column back to a rune offset, clamping the
// column to the line length.
func offsetAt(text string, line, col int) int {
	runes := []rune(text)
	offset := 0
	for l := 0; l < line && offset < len(runes); offset++ {
		if runes[offset] == '\n' {
			l++
		}
	}
	for c := 0; c < col && offset < len(runes) && runes[offset] != '\n'; c++ {
		offset++
	}
	return offset
}

func insertBlock(blocks []*Block, at int, b *Block) []*Block {
	blocks = append(blocks, nil)
	copy(blocks[at+1:], blocks[at:])
	blocks[at] = b
	return blocks
}
