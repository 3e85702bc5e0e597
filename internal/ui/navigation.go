package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/paneldock/internal/logging"
	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/menu"
	"github.com/atomicstack/paneldock/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const dockToTargetID = "dock-to:target"

// openPalette snapshots the workspace and shows the root palette level.
// Every action chosen from this palette session works from that snapshot.
func (m *Model) openPalette() tea.Cmd {
	m.paletteCtx = menu.Snapshot(m.ws)
	root := m.registry.Root()
	items, err := root.Loader(m.paletteCtx)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	lvl := newLevel(root.ID, paletteRootTitle, items, root)
	m.stack = []*level{lvl}
	m.mode = ModePalette
	m.pendingPanel = 0
	m.errMsg = ""
	m.filterCursorDirty = true
	events.UI.PaletteOpen(lvl.ID, len(lvl.Items))
	return nil
}

func (m *Model) closePalette() {
	m.stack = nil
	m.mode = ModeBoard
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.pendingPanel = 0
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+k":
		m.moveCursor(-1)
	case "down", "ctrl+j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursorPage(-1)
	case "pgdown":
		m.moveCursorPage(1)
	case "home":
		if current := m.currentLevel(); current != nil && current.MoveCursorHome() {
			m.noteCursor(current)
		}
	case "end":
		if current := m.currentLevel(); current != nil && current.MoveCursorEnd() {
			m.noteCursor(current)
		}
	}
	return nil
}

func (m *Model) handleEscapeKey() {
	if len(m.stack) <= 1 {
		m.closePalette()
		return
	}
	current := m.currentLevel()
	if current.ID == dockToTargetID {
		m.pendingPanel = 0
	}
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.currentLevel()
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.PaletteEnter(current.ID, item.ID, item.Label, current.Filter)
	current.SetFilter("")

	ctx := m.paletteCtx
	ctx.Pending = m.pendingPanel
	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if node == nil {
		m.setInfo(fmt.Sprintf("Selected %s (no action defined)", item.Label))
		return nil
	}
	if child, ok := node.Children[item.ID]; ok && child.Loader != nil {
		current.LastCursor = current.Cursor
		m.startPending(child.ID, item.Label)
		return m.loadMenuCmd(child.ID, item.Label, child.Loader, ctx)
	}
	if node.Action != nil {
		m.startPending(node.ID, item.Label)
		return m.bus.Execute(ctx, command.Request{ID: node.ID, Label: item.Label, Handler: node.Action, Item: item})
	}
	m.setInfo(fmt.Sprintf("Selected %s (no action defined)", item.Label))
	return nil
}

func (m *Model) startPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) moveCursor(delta int) {
	if current := m.currentLevel(); current != nil && current.MoveCursor(delta) {
		m.noteCursor(current)
	}
}

func (m *Model) moveCursorPage(pages int) {
	if current := m.currentLevel(); current != nil && current.MoveCursorPage(pages, m.maxVisibleItems()) {
		m.noteCursor(current)
	}
}

func (m *Model) noteCursor(l *level) {
	events.UI.PaletteCursor(l.ID, l.Cursor)
	m.syncViewport(l)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID || m.mode != ModePalette {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	node, _ := m.registry.Find(update.id)
	m.pushLevel(newLevel(update.id, update.title, update.items, node))
	return nil
}

func (m *Model) handleTargetPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.TargetPrompt)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if m.mode != ModePalette {
		return nil
	}
	if parent := m.currentLevel(); parent != nil {
		parent.LastCursor = parent.Cursor
	}
	node, _ := m.registry.Find(dockToTargetID)
	m.pendingPanel = prompt.Panel
	m.pushLevel(newLevel(dockToTargetID, fmt.Sprintf("dock %s into…", prompt.Panel), menu.GroupItems(prompt.Context), node))
	return nil
}

func (m *Model) pushLevel(l *level) {
	m.syncViewport(l)
	m.stack = append(m.stack, l)
	if len(l.Items) == 0 {
		m.setInfo("No entries found.")
	} else if m.infoMsg != "" {
		m.clearInfo()
	}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	for _, req := range result.Requests {
		m.ws.Queue.Submit(req)
	}
	events.Action.Success(result.Info, len(result.Requests))
	m.closePalette()
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return nil
}

// paletteHeader renders the breadcrumb of open palette levels.
func (m *Model) paletteHeader() string {
	segments := make([]string, 0, len(m.stack))
	for _, lvl := range m.stack {
		title := strings.TrimSpace(lvl.Title)
		if title == "" {
			title = lvl.ID
		}
		segments = append(segments, title)
	}
	return strings.Join(segments, paletteHeaderSeparator)
}
