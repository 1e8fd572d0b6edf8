package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
	"github.com/atomicstack/slashpad/internal/ui/command"
)

func requestFor(id string, item menu.Item, action menu.Action) command.Request {
	return command.Request{ID: id, Label: item.Label, Handler: action}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		logging.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}
