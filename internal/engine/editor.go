package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoHighlighter is returned by New when no highlight language is
// registered for code blocks.
var ErrNoHighlighter = errors.New("no code highlight language registered")

const defaultHistoryDepth = 100

// Span is a highlighted rune range of a code block.
type Span struct {
	Start  int
	End    int
	Color  string
	Bold   bool
	Italic bool
}

// Highlighter tokenizes code block text.
type Highlighter interface {
	Languages() []string
	Highlight(language, code string) ([]Span, error)
}

// Options configures a new Editor. A zero HistoryDepth selects the default
// depth; a negative one disables undo.
type Options struct {
	Schema       *Schema
	Content      *Doc
	Highlighter  Highlighter
	HistoryDepth int
	Autofocus    bool
	Now          func() time.Time
}

// EventKind classifies an editor notification.
type EventKind int

const (
	EventContent EventKind = iota
	EventSelection
	EventFocus
)

func (k EventKind) String() string {
	switch k {
	case EventContent:
		return "content"
	case EventSelection:
		return "selection"
	case EventFocus:
		return "focus"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is delivered to OnUpdate listeners after a transaction applies.
type Event struct {
	Kind    EventKind
	State   State
	Version uint64
	Source  string
}

// Editor owns the document state and applies every change to it.
type Editor struct {
	state       State
	highlighter Highlighter
	history     history
	version     uint64
	listeners   []func(Event)
	now         func() time.Time
}

// New builds an editor. Content defaults to one empty paragraph.
func New(opts Options) (*Editor, error) {
	if opts.Highlighter == nil || len(opts.Highlighter.Languages()) == 0 {
		return nil, ErrNoHighlighter
	}
	schema := opts.Schema
	if schema == nil {
		schema = StarterKit()
	}
	doc := opts.Content
	if doc == nil || len(doc.Blocks) == 0 {
		doc = NewDoc()
	}
	for i, b := range doc.Blocks {
		if _, ok := schema.Block(b.Type); !ok {
			return nil, fmt.Errorf("block %d: unsupported type %q", i, b.Type)
		}
	}
	depth := opts.HistoryDepth
	if depth == 0 {
		depth = defaultHistoryDepth
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Editor{
		state: State{
			Doc:       doc.clone(),
			Selection: Collapsed(Pos{}),
			Focused:   opts.Autofocus,
			schema:    schema,
		},
		highlighter: opts.Highlighter,
		history:     history{depth: depth},
		now:         now,
	}, nil
}

// State returns the current snapshot.
func (e *Editor) State() State {
	return e.state
}

// Version increments on every document change.
func (e *Editor) Version() uint64 {
	return e.version
}

// Focused reports whether the editable surface holds input focus.
func (e *Editor) Focused() bool {
	return e.state.Focused
}

// IsActive reports whether a mark or node applies at the selection.
func (e *Editor) IsActive(name string, attrs Attrs) bool {
	return e.state.IsActive(name, attrs)
}

// OnUpdate registers a listener. Listeners run synchronously, in
// registration order, after each applied transaction.
func (e *Editor) OnUpdate(fn func(Event)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

// Focus gives the editor input focus.
func (e *Editor) Focus() {
	e.setFocus(true)
}

// Blur removes input focus.
func (e *Editor) Blur() {
	e.setFocus(false)
}

func (e *Editor) setFocus(focused bool) {
	if e.state.Focused == focused {
		return
	}
	tr := newTransaction(e.state, "focus")
	tr.focused = focused
	e.apply(tr)
}

// CodeLanguage returns the highlight language used for block i: its own
// language when registered, otherwise the first registered one.
func (e *Editor) CodeLanguage(i int) string {
	langs := e.highlighter.Languages()
	if b := e.state.Doc.Block(i); b != nil && b.Language != "" {
		for _, l := range langs {
			if l == b.Language {
				return l
			}
		}
	}
	return langs[0]
}

// CodeHighlights returns highlight spans for code block i.
func (e *Editor) CodeHighlights(i int) ([]Span, error) {
	b := e.state.Doc.Block(i)
	if b == nil || b.Type != NodeCodeBlock {
		return nil, nil
	}
	return e.highlighter.Highlight(e.CodeLanguage(i), b.TextContent())
}

func (e *Editor) apply(tr *Transaction) {
	e.commit(tr, true)
}

func (e *Editor) commit(tr *Transaction, record bool) {
	prev := e.state
	next := tr.State()
	if tr.docChanged {
		if record {
			e.history.record(prev, tr.name, e.now())
		}
		e.version++
	} else {
		next.Doc = prev.Doc
	}
	e.state = next
	events := make([]Event, 0, 3)
	if tr.docChanged {
		events = append(events, Event{Kind: EventContent})
	}
	if prev.Selection != next.Selection {
		events = append(events, Event{Kind: EventSelection})
	}
	if prev.Focused != next.Focused {
		events = append(events, Event{Kind: EventFocus})
	}
	for _, ev := range events {
		ev.State, ev.Version, ev.Source = next, e.version, tr.name
		for _, fn := range e.listeners {
			fn(ev)
		}
	}
}
