package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header                *lipgloss.Style
	Section               *lipgloss.Style
	Container             *lipgloss.Style
	Leaf                  *lipgloss.Style
	ActiveLeaf            *lipgloss.Style
	Focused               *lipgloss.Style
	Docked                *lipgloss.Style
	Floating              *lipgloss.Style
	Closed                *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Loading               *lipgloss.Style
	Warn                  *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

var defaultStyles = Styles{
	Header:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
	Section:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Underline(true)),
	Container:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))),
	Leaf:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	ActiveLeaf: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)),
	Focused:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33"))),
	Docked:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34"))),
	Floating:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
	Closed:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)),
	Item:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Loading:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true)),
	Warn:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	Error:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
	Info:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Footer:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Filter:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	FilterPrompt:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
	FilterPlaceholder: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Placement picks the style for a placement label as produced by
// state.Label.
func (s *Styles) Placement(label string) *lipgloss.Style {
	switch label {
	case "docked":
		return s.Docked
	case "floating":
		return s.Floating
	default:
		return s.Closed
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
