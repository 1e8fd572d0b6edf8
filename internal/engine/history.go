package engine

import "time"

const groupDelay = 500 * time.Millisecond

type historyEntry struct {
	doc *Doc
	sel Selection
}

type history struct {
	depth    int
	undo     []historyEntry
	redo     []historyEntry
	lastName string
	lastAt   time.Time
}

// record stores the state preceding a document change. Consecutive typing
// inside the group delay collapses into the entry already on the stack.
func (h *history) record(prev State, name string, at time.Time) {
	if h.depth <= 0 {
		return
	}
	grouped := name == inputInsertText && h.lastName == inputInsertText &&
		at.Sub(h.lastAt) < groupDelay && len(h.undo) > 0
	h.lastName, h.lastAt = name, at
	h.redo = nil
	if grouped {
		return
	}
	h.undo = append(h.undo, historyEntry{doc: prev.Doc, sel: prev.Selection})
	if len(h.undo) > h.depth {
		h.undo = h.undo[len(h.undo)-h.depth:]
	}
}

func (h *history) breakGroup() {
	h.lastName = ""
}

// Undo reverts the last document change.
func (e *Editor) Undo() bool {
	n := len(e.history.undo)
	if n == 0 {
		return false
	}
	entry := e.history.undo[n-1]
	e.history.undo = e.history.undo[:n-1]
	e.history.redo = append(e.history.redo, historyEntry{doc: e.state.Doc, sel: e.state.Selection})
	e.history.breakGroup()
	e.restore(entry, "undo")
	return true
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	n := len(e.history.redo)
	if n == 0 {
		return false
	}
	entry := e.history.redo[n-1]
	e.history.redo = e.history.redo[:n-1]
	e.history.undo = append(e.history.undo, historyEntry{doc: e.state.Doc, sel: e.state.Selection})
	e.history.breakGroup()
	e.restore(entry, "redo")
	return true
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool { return len(e.history.undo) > 0 }

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool { return len(e.history.redo) > 0 }

func (e *Editor) restore(entry historyEntry, name string) {
	tr := newTransaction(e.state, name)
	tr.doc = entry.doc.clone()
	tr.SetSelection(entry.sel)
	tr.changed()
	e.commit(tr, false)
}
