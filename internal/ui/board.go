package ui

import (
	"fmt"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/frame"
	"github.com/atomicstack/paneldock/internal/logging"
	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type frameTickMsg struct {
	tick frame.Tick
}

type frameDoneMsg struct{}

func waitForTick(c *frame.Clock) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-c.Ticks()
		if !ok {
			return frameDoneMsg{}
		}
		return frameTickMsg{tick: tick}
	}
}

func (m *Model) handleFrameTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(frameTickMsg); !ok {
		return nil
	}
	m.clearInfo()
	if m.clock == nil {
		return nil
	}
	return waitForTick(m.clock)
}

func (m *Model) handleFrameDoneMsg(tea.Msg) tea.Cmd {
	m.clock = nil
	return nil
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, k.Palette):
		return m.openPalette()
	case key.Matches(msg, k.FocusNext):
		m.cycleFocus(1)
	case key.Matches(msg, k.FocusPrev):
		m.cycleFocus(-1)
	case key.Matches(msg, k.Undock):
		m.ws.Queue.SubmitUndock(m.focus, m.focusedLeaf())
	case key.Matches(msg, k.Dock):
		m.ws.Queue.SubmitDock(m.focus)
	case key.Matches(msg, k.Close):
		m.ws.Queue.SubmitClose(m.focus, m.focusedLeaf())
	case key.Matches(msg, k.Reopen):
		m.ws.Queue.SubmitReopen(m.focus)
	case key.Matches(msg, k.Activate):
		m.ws.Queue.SubmitActivate(m.focus, m.focusedLeaf())
	case key.Matches(msg, k.Touch):
		m.touchFocused()
	case key.Matches(msg, k.Left):
		m.moveFocused(-1, 0)
	case key.Matches(msg, k.Right):
		m.moveFocused(1, 0)
	case key.Matches(msg, k.Up):
		m.moveFocused(0, -1)
	case key.Matches(msg, k.Down):
		m.moveFocused(0, 1)
	case key.Matches(msg, k.Narrow):
		m.resizeFocused(-1, 0)
	case key.Matches(msg, k.Widen):
		m.resizeFocused(1, 0)
	case key.Matches(msg, k.Shorten):
		m.resizeFocused(0, -1)
	case key.Matches(msg, k.Lengthen):
		m.resizeFocused(0, 1)
	}
	return nil
}

func (m *Model) cycleFocus(delta int) {
	ids := panel.All()
	idx := 0
	for i, id := range ids {
		if id == m.focus {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(ids) + len(ids)) % len(ids)
	m.focus = ids[idx]
	events.UI.Focus(m.focus.String())
}

// focusedLeaf captures the leaf the focused panel occupies right now. The
// request carrying it is applied at the end of the frame.
func (m *Model) focusedLeaf() tiles.Ref {
	if p, ok := m.ws.Ledger.Get(m.focus); ok {
		if d, ok := p.(state.Docked); ok {
			return d.Leaf
		}
	}
	return 0
}

func (m *Model) touchFocused() {
	content := m.ws.Registry.ContentOf(m.focus)
	if content == nil {
		return
	}
	p, _ := m.ws.Ledger.Get(m.focus)
	content.Touch(fmt.Sprintf("edited while %s", state.Label(p)))
	m.setInfo(content.Summary())
}

func (m *Model) moveFocused(dx, dy int) {
	if !m.ws.Windows.Move(m.focus, dx, dy) {
		m.setInfo(fmt.Sprintf("%s is not floating", m.focus))
		return
	}
	g, _ := m.ws.Windows.Geometry(m.focus)
	events.Window.Move(m.focus.String(), g.String())
}

func (m *Model) resizeFocused(dw, dh int) {
	if !m.ws.Windows.Resize(m.focus, dw, dh) {
		m.setInfo(fmt.Sprintf("%s is not floating", m.focus))
		return
	}
	g, _ := m.ws.Windows.Geometry(m.focus)
	events.Window.Resize(m.focus.String(), g.String())
}

// noteDiagnostics surfaces the worst diagnostic of a frame in the status line.
// Informational ones only show in verbose mode.
func (m *Model) noteDiagnostics(diags []dock.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	m.lastDiags = diags
	var worst *dock.Diagnostic
	for i := range diags {
		d := &diags[i]
		switch d.Severity {
		case dock.SeverityError:
			logging.Error(d)
		case dock.SeverityWarn:
			logging.Warn("placement request not applied", "code", string(d.Kind), "panel", d.Panel.String(), "op", d.Op.String())
		}
		if worst == nil || d.Severity > worst.Severity {
			worst = d
		}
	}
	if worst.Severity == dock.SeverityInfo {
		if m.verbose {
			m.setInfo(worst.String())
		}
		return
	}
	m.errMsg = worst.String()
	m.forceClearInfo()
}
