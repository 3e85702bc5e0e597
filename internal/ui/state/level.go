package state

import "github.com/atomicstack/paneldock/internal/menu"

// Level is one page of the palette: its items, filter, cursor and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	Cursor         int
	LastCursor     int
	Node           *menu.Node
	ViewportOffset int
}

// NewLevel constructs a Level using the provided items and palette node.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the item list and reapplies the filter.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = append([]menu.Item(nil), items...)
	l.applyFilter()
}

// MoveCursor moves the cursor by delta, wrapping at either end.
func (l *Level) MoveCursor(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor && len(l.Items) > 0
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = len(l.Items) - 1
	return old != l.Cursor
}

// MoveCursorPage moves by one page without wrapping. pages is negative to
// move up.
func (l *Level) MoveCursorPage(pages, maxVisible int) bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	size := maxVisible
	if size <= 0 || size > n {
		size = n
	}
	old := l.Cursor
	l.Cursor = clamp(l.Cursor+pages*size, 0, n-1)
	return old != l.Cursor
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 || n <= maxVisible {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, n-maxVisible)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
