package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/paneldock/internal/format/table"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModePalette {
		return m.viewPalette()
	}
	return m.viewBoard()
}

func (m *Model) viewBoard() string {
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.boardHeader(), style: styles.Header})
	lines = append(lines, m.treeLines()...)
	if floating := m.floatingLines(); len(floating) > 0 {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "floating", style: styles.Section})
		lines = append(lines, floating...)
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "placements", style: styles.Section})
	lines = append(lines, m.ledgerLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter || m.showHelp {
		lines = append(lines, styledLine{})
		for _, row := range strings.Split(m.help.View(m.keys), "\n") {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	}
	lines = limitHeight(lines, m.height-1, m.width)
	lines = append(lines, m.statusLine())
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) boardHeader() string {
	if m.ws == nil {
		return "paneldock"
	}
	return fmt.Sprintf("paneldock  layout %s  focus %s", m.ws.Layout, m.focus)
}

// treeLines draws the tile tree depth first. The active tab of each group is
// marked and the focused panel is highlighted.
func (m *Model) treeLines() []styledLine {
	if m.ws == nil || m.ws.Tree.Root() == 0 {
		return []styledLine{{text: "(no docked panels)", style: styles.Closed}}
	}
	tree := m.ws.Tree
	var lines []styledLine
	tree.Walk(tiles.Preorder, func(ref tiles.Ref, depth int) bool {
		indent := strings.Repeat("  ", depth)
		kind, _ := tree.KindOf(ref)
		if kind.IsContainer() {
			lines = append(lines, styledLine{text: fmt.Sprintf("%s%s %s", indent, kind, ref), style: styles.Container})
			return true
		}
		content := tree.Content(ref)
		if content == nil {
			return true
		}
		marker := " "
		style := styles.Leaf
		if parent, ok := tree.ParentOf(ref); ok && tree.Active(parent) == ref {
			marker = "*"
			style = styles.ActiveLeaf
		}
		if content.ID == m.focus {
			style = styles.Focused
		}
		lines = append(lines, styledLine{text: fmt.Sprintf("%s%s %s", indent, marker, content.Summary()), style: style})
		return true
	})
	return lines
}

func (m *Model) floatingLines() []styledLine {
	if m.ws == nil {
		return nil
	}
	stack := m.ws.Windows.Stack()
	lines := make([]styledLine, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		id := stack[i]
		g, _ := m.ws.Windows.Geometry(id)
		style := styles.Floating
		if id == m.focus {
			style = styles.Focused
		}
		lines = append(lines, styledLine{text: fmt.Sprintf("  %-9s %s", id, g), style: style})
	}
	return lines
}

func (m *Model) ledgerLines() []styledLine {
	if m.ws == nil {
		return nil
	}
	entries := m.ws.Ledger.Entries()
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		label := state.Label(entry.Placement)
		rev := 0
		if c := m.ws.Registry.ContentOf(entry.Panel); c != nil {
			rev = c.Revision
		}
		marker := " "
		if entry.Panel == m.focus {
			marker = "▌"
		}
		rows = append(rows, []string{
			marker + entry.Panel.String(),
			render(styles.Placement(label), label),
			placementDetail(entry.Placement),
			fmt.Sprintf("rev %d", rev),
		})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight})
	lines := make([]styledLine, len(formatted))
	for i, row := range formatted {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

func placementDetail(p state.Placement) string {
	switch p := p.(type) {
	case state.Docked:
		return "leaf " + p.Leaf.String()
	case state.Floating:
		return p.Geometry.String()
	case state.Closed:
		return p.Hint.String()
	default:
		return ""
	}
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: m.errMsg, style: styles.Error}
	}
	if m.loading {
		return styledLine{text: fmt.Sprintf("Loading %s…", m.pendingLabel), style: styles.Loading}
	}
	return styledLine{}
}

func (m *Model) viewPalette() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.paletteHeader(), style: styles.Header})
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			start, end := 0, len(current.Items)
			if maxItems := m.maxVisibleItems(); maxItems > 0 && end > maxItems {
				start = current.ViewportOffset
				end = start + maxItems
			}
			for idx := start; idx < end; idx++ {
				lines = append(lines, m.buildItemLine(current.Items[idx].Label, idx == current.Cursor))
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc back  ctrl+u clear  ctrl+c quit", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = append(lines, m.statusLine(), styledLine{text: m.filterPrompt(), raw: true})
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) buildItemLine(label string, selected bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := "▌ " + label
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{text: text, style: lineStyle, prefixStyle: indicatorStyle, highlightFrom: 1}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, status line, filter prompt
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if remain := m.height - used; remain > 1 {
		return remain
	}
	return 1
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

// clearInfo drops the info message once it has expired.
func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.forceClearInfo()
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	m.clearInfo()
	return m.infoMsg
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := render(line.prefixStyle, string(runes[:line.highlightFrom]))
			tail := render(line.style, string(runes[line.highlightFrom:]))
			text = head + tail
		} else {
			text = render(line.style, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width cells, ANSI sequences included.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
