package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/paneldock/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter query. Clearing it restores the cursor held
// before filtering started.
func (l *Level) SetFilter(query string) {
	was := strings.TrimSpace(l.Filter)
	now := strings.TrimSpace(query)
	if was == "" && now != "" {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.applyFilter()
	switch {
	case now != "":
		l.Cursor = BestMatchIndex(l.Items, now)
		if l.Cursor < 0 {
			l.Cursor = 0
		}
	case was != "":
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
}

// AppendFilter adds text to the end of the filter.
func (l *Level) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	return true
}

// DeleteFilterRune removes the last rune of the filter.
func (l *Level) DeleteFilterRune() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// DeleteFilterWord removes the last word of the filter and any spaces after it.
func (l *Level) DeleteFilterWord() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	l.SetFilter(string(runes[:i]))
	return true
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterItems returns items whose label fuzzily matches query, falling back
// to a substring match on the label or ID.
func FilterItems(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]menu.Item(nil), items...)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	matched := make(map[int]bool)
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels) {
		matched[rank.OriginalIndex] = true
	}
	lower := strings.ToLower(trimmed)
	out := make([]menu.Item, 0, len(items))
	for i, item := range items {
		if matched[i] || strings.Contains(strings.ToLower(item.ID), lower) {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the item a query most likely names: an exact label or
// ID, then a prefix, then the closest fuzzy match. Returns -1 for no items.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.ID, trimmed) || strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.ID), lower) || strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
