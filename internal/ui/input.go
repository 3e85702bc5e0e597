package ui

import (
	"unicode"

	"github.com/atomicstack/paneldock/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput edits the palette filter. It reports whether msg was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.loading {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	changed := false
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		current.SetFilter("")
		events.Filter.Cleared(current.ID)
		changed = true
	case "ctrl+w":
		if !current.DeleteFilterWord() {
			return false
		}
		events.Filter.WordBackspace(current.ID, current.Filter)
		changed = true
	}
	if !changed {
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			if !current.DeleteFilterRune() {
				return false
			}
			events.Filter.Backspace(current.ID, current.Filter)
		case tea.KeySpace:
			current.AppendFilter(" ")
			events.Filter.Append(current.ID, current.Filter)
		case tea.KeyRunes:
			if msg.Alt || len(msg.Runes) == 0 {
				return false
			}
			for _, r := range msg.Runes {
				if unicode.IsControl(r) {
					return false
				}
			}
			current.AppendFilter(string(msg.Runes))
			events.Filter.Append(current.ID, current.Filter)
		default:
			return false
		}
	}
	m.filterCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if current.Filter == "" {
		placeholder := []rune("(type to filter)")
		return prompt + m.renderFilterCursor(string(placeholder[0])) + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	return prompt + render(styles.Filter, current.Filter) + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
