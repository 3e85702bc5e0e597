package ui

import (
	"github.com/atomicstack/paneldock/internal/logging"
	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// loadMenuCmd runs a loader against the palette snapshot off the update loop.
func (m *Model) loadMenuCmd(id, title string, loader menu.Loader, ctx menu.Context) tea.Cmd {
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String(), m.mode.String(), m.focus.String())
	if m.mode == ModePalette {
		return m.handlePaletteKey(keyMsg)
	}
	m.errMsg = ""
	return m.handleBoardKey(keyMsg)
}
