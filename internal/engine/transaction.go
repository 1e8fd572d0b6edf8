package engine

// Transaction accumulates changes against a private copy of the state.
// Nothing is visible to the editor until the transaction is applied.
type Transaction struct {
	schema *Schema
	doc    *Doc
	sel    Selection

	storedMarks MarkSet
	hasStored   bool
	focused     bool

	name       string
	docChanged bool
}

func newTransaction(st State, name string) *Transaction {
	return &Transaction{
		schema:      st.schema,
		doc:         st.Doc.clone(),
		sel:         st.Selection,
		storedMarks: st.storedMarks,
		hasStored:   st.hasStored,
		focused:     st.Focused,
		name:        name,
	}
}

// State returns the transaction's current view of the editor.
func (tr *Transaction) State() State {
	return State{
		Doc:         tr.doc,
		Selection:   tr.sel,
		Focused:     tr.focused,
		schema:      tr.schema,
		storedMarks: tr.storedMarks,
		hasStored:   tr.hasStored,
	}
}

// Doc exposes the working document.
func (tr *Transaction) Doc() *Doc {
	return tr.doc
}

// Selection returns the working selection.
func (tr *Transaction) Selection() Selection {
	return tr.sel
}

// SetSelection moves the selection and drops stored marks.
func (tr *Transaction) SetSelection(sel Selection) {
	sel.Anchor = clampPos(tr.doc, sel.Anchor)
	sel.Head = clampPos(tr.doc, sel.Head)
	if sel != tr.sel {
		tr.storedMarks, tr.hasStored = nil, false
	}
	tr.sel = sel
}

func (tr *Transaction) setStoredMarks(marks MarkSet) {
	tr.storedMarks = marks
	tr.hasStored = true
}

func (tr *Transaction) clearStoredMarks() {
	tr.storedMarks, tr.hasStored = nil, false
}

// changed marks the document as modified.
func (tr *Transaction) changed() {
	tr.docChanged = true
}

// deleteRange removes [from, to), joining the boundary blocks, and maps the
// selection through the deletion.
func (tr *Transaction) deleteRange(from, to Pos) {
	from, to = clampPos(tr.doc, from), clampPos(tr.doc, to)
	if ComparePos(from, to) >= 0 {
		return
	}
	first := tr.doc.Blocks[from.Block]
	last := tr.doc.Blocks[to.Block]
	left, _ := splitRuns(first.Content, from.Offset)
	_, right := splitRuns(last.Content, to.Offset)
	if !tr.schema.AllowsMarks(first.Type) {
		right = stripMarks(right)
	}
	joined := make([]Text, 0, len(left)+len(right))
	joined = append(joined, left...)
	joined = append(joined, right...)
	first.Content = normalizeRuns(joined)
	if to.Block > from.Block {
		tr.doc.Blocks = append(tr.doc.Blocks[:from.Block+1], tr.doc.Blocks[to.Block+1:]...)
	}
	anchor := mapDeleted(tr.sel.Anchor, from, to)
	head := mapDeleted(tr.sel.Head, from, to)
	tr.sel = Selection{Anchor: anchor, Head: head}
	tr.changed()
}

// deleteSelection removes the selected content and collapses the cursor.
func (tr *Transaction) deleteSelection() bool {
	if tr.sel.Empty() {
		return false
	}
	from, to := tr.sel.From(), tr.sel.To()
	tr.deleteRange(from, to)
	tr.SetSelection(Collapsed(from))
	return true
}

// insertText inserts text at the cursor using marks.
func (tr *Transaction) insertText(text string, marks MarkSet) {
	head := tr.sel.Head
	b := tr.doc.Blocks[head.Block]
	if !tr.schema.AllowsMarks(b.Type) {
		marks = nil
	}
	b.Content = insertRun(b.Content, head.Offset, text, marks)
	head.Offset += len([]rune(text))
	tr.SetSelection(Collapsed(head))
	tr.changed()
}

// selectedBlocks returns the inclusive block span the selection touches.
func (tr *Transaction) selectedBlocks() (int, int) {
	return tr.sel.From().Block, tr.sel.To().Block
}
