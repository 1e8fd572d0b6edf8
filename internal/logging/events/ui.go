package events

import "github.com/atomicstack/slashpad/internal/logging"

type MenuTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type PointerTracer struct{}

var (
	Menu    = MenuTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Pointer = PointerTracer{}
)

func (MenuTracer) Evaluate(menuID string, visible bool) {
	logging.Trace("menu.evaluate", map[string]interface{}{"menu": menuID, "visible": visible})
}

func (MenuTracer) Cursor(menuID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (MenuTracer) Focus(menuID string, focused bool) {
	logging.Trace("menu.focus", map[string]interface{}{"menu": menuID, "focused": focused})
}

func (MenuTracer) Activate(menuID, itemID, label string) {
	logging.Trace("menu.activate", map[string]interface{}{
		"menu":  menuID,
		"item":  itemID,
		"label": label,
	})
}

func (MenuTracer) Dropdown(open bool) {
	logging.Trace("menu.dropdown", map[string]interface{}{"open": open})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(menuID string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": menuID})
}

func (FilterTracer) Append(menuID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) Backspace(menuID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) WordBackspace(menuID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) Cursor(menuID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"menu": menuID, "cursor": pos})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (PointerTracer) Hover(region string) {
	logging.Trace("pointer.hover", map[string]interface{}{"region": region})
}
