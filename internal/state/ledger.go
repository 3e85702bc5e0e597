package state

import (
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/window"
)

// Entry is one ledger row.
type Entry struct {
	Panel     panel.ID
	Placement Placement
}

// Ledger records the placement of every panel. Rows are created once and
// never removed.
type Ledger interface {
	Get(panel.ID) (Placement, bool)
	Set(panel.ID, Placement)
	Entries() []Entry
	Remembered(panel.ID) (window.Rect, bool)
	Remember(panel.ID, window.Rect)
}

type ledger struct {
	placements map[panel.ID]Placement
	geometry   map[panel.ID]window.Rect
}

// NewLedger seeds a row for every id in initial. Ids missing from initial
// start out closed with no hint.
func NewLedger(ids []panel.ID, initial map[panel.ID]Placement) Ledger {
	l := &ledger{
		placements: make(map[panel.ID]Placement, len(ids)),
		geometry:   make(map[panel.ID]window.Rect),
	}
	for _, id := range ids {
		p, ok := initial[id]
		if !ok || p == nil {
			p = Closed{}
		}
		l.Set(id, p)
	}
	return l
}

func (l *ledger) Get(id panel.ID) (Placement, bool) {
	p, ok := l.placements[id]
	return p, ok
}

// Set replaces the placement of id. Floating geometry is remembered so a
// later undock can restore it.
func (l *ledger) Set(id panel.ID, p Placement) {
	if p == nil {
		return
	}
	l.placements[id] = p
	switch v := p.(type) {
	case Floating:
		l.Remember(id, v.Geometry)
	case Closed:
		if v.Hint.Kind == HintWasFloating {
			l.Remember(id, v.Hint.Geometry)
		}
	}
}

// Entries returns a copy of every row in canonical panel order.
func (l *ledger) Entries() []Entry {
	entries := make([]Entry, 0, len(l.placements))
	for _, id := range panel.All() {
		if p, ok := l.placements[id]; ok {
			entries = append(entries, Entry{Panel: id, Placement: p})
		}
	}
	return entries
}

func (l *ledger) Remembered(id panel.ID) (window.Rect, bool) {
	r, ok := l.geometry[id]
	return r, ok
}

func (l *ledger) Remember(id panel.ID, r window.Rect) {
	if !r.Valid() {
		return
	}
	l.geometry[id] = r
}
