package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/engine"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
	"github.com/atomicstack/slashpad/internal/theme"
	"github.com/atomicstack/slashpad/internal/ui/command"
	uistate "github.com/atomicstack/slashpad/internal/ui/state"
)

type level = uistate.Level

type focusArea int

const (
	focusEditor focusArea = iota
	focusBubble
	focusDropdown
)

var styles = theme.Default()

var errEditorMissing = errors.New("editor loader returned no editor")

type msgHandler func(tea.Msg) tea.Cmd

// EditorLoader builds the editing engine. It runs off the update loop.
type EditorLoader func() (*engine.Editor, error)

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Loader     EditorLoader
}

// editorReadyMsg carries the outcome of the editor loader.
type editorReadyMsg struct {
	editor *engine.Editor
	err    error
}

// Model implements the Bubble Tea model for the editor page.
type Model struct {
	editor  *engine.Editor
	loader  EditorLoader
	loading bool
	initErr error

	registry *menu.Registry
	bus      *command.Bus
	slash    *level
	bubble   *level
	turnInto *level
	focus    focusArea

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	keys              keyMap
	help              help.Model
	filterCursor      cursor.Model
	filterCursorDirty bool

	scroll       int
	follow       bool
	hoverSidebar bool
	dragging     bool
	layout       pageLayout
	highlights   map[int][]engine.Span
	menuRows     map[string]int
	hlVersion    uint64

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. The editor is created by opts.Loader
// once the program starts.
func NewModel(opts Options) *Model {
	registry := menu.BuildRegistry()
	m := &Model{
		loader:     opts.Loader,
		loading:    opts.Loader != nil,
		registry:   registry,
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		follow:     true,
	}
	m.slash = m.newLevel(menu.SlashID, "Basic blocks")
	m.bubble = m.newLevel(menu.BubbleID, "Format")
	m.turnInto = m.newLevel(menu.TurnIntoID, "Turn into")
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.help.Styles.ShortKey = styles.Status.Copy()
	m.help.Styles.ShortDesc = styles.Footer.Copy()
	m.help.Styles.ShortSeparator = styles.Footer.Copy()
	m.registerHandlers()
	return m
}

func (m *Model) newLevel(id, title string) *level {
	items, err := m.registry.Items(id, menu.Context{})
	if err != nil {
		logging.Error(err)
	}
	return uistate.NewLevel(id, title, items)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, loadEditorCmd(m.loader))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func loadEditorCmd(loader EditorLoader) tea.Cmd {
	return func() tea.Msg {
		ed, err := loader()
		return editorReadyMsg{editor: ed, err: err}
	}
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(editorReadyMsg{}):    m.handleEditorReadyMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.reconcileFocus()
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// reconcileFocus hands focus back to the editor once the bubble menu it
// belonged to is no longer visible.
func (m *Model) reconcileFocus() {
	if m.focus == focusEditor || m.bubbleVisible() {
		return
	}
	m.closeDropdown()
	m.focus = focusEditor
	events.Menu.Focus(menu.BubbleID, false)
}

func (m *Model) handleEditorReadyMsg(msg tea.Msg) tea.Cmd {
	ready, ok := msg.(editorReadyMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if ready.err != nil || ready.editor == nil {
		err := ready.err
		if err == nil {
			err = errEditorMissing
		}
		m.initErr = err
		events.Editor.Failed(err)
		logging.Error(err)
		return tea.Quit
	}
	m.attachEditor(ready.editor)
	return nil
}

// attachEditor makes ed the dispatch target and subscribes to its changes.
func (m *Model) attachEditor(ed *engine.Editor) {
	m.editor = ed
	m.bus.Attach(command.Ready(ed))
	ed.OnUpdate(m.handleEditorEvent)
	events.Editor.Ready(ed.State().Doc.BlockCount(), ed.Version())
}

func (m *Model) handleEditorEvent(ev engine.Event) {
	events.Editor.Transaction(ev.Kind.String(), ev.Source, ev.Version)
	switch ev.Kind {
	case engine.EventContent:
		m.slash.Reset()
		m.follow = true
	case engine.EventSelection:
		m.follow = true
	default:
		return
	}
	events.Menu.Evaluate(menu.SlashID, menu.SlashTrigger(ev.State))
	events.Menu.Evaluate(menu.BubbleID, menu.BubbleTrigger(ev.State))
}

// Err reports the editor initialisation failure, if any.
func (m *Model) Err() error {
	return m.initErr
}

// Editor exposes the editing engine once it is ready.
func (m *Model) Editor() *engine.Editor {
	return m.editor
}

func (m *Model) slashVisible() bool {
	if m.editor == nil {
		return false
	}
	return menu.SlashTrigger(m.editor.State())
}

func (m *Model) bubbleVisible() bool {
	if m.editor == nil {
		return false
	}
	return menu.BubbleTrigger(m.editor.State())
}

// codeHighlights caches highlight spans per block for the current document
// version.
func (m *Model) codeHighlights(block int) []engine.Span {
	if m.editor == nil {
		return nil
	}
	if v := m.editor.Version(); v != m.hlVersion || m.highlights == nil {
		m.highlights = make(map[int][]engine.Span)
		m.hlVersion = v
	}
	if spans, ok := m.highlights[block]; ok {
		return spans
	}
	spans, err := m.editor.CodeHighlights(block)
	if err != nil {
		logging.Error(err)
	}
	m.highlights[block] = spans
	return spans
}
