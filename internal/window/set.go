package window

import (
	"errors"
	"fmt"

	"github.com/atomicstack/paneldock/internal/panel"
)

var (
	ErrAlreadyOpen = errors.New("window already open")
	ErrNotOpen     = errors.New("window not open")
	ErrBadGeometry = errors.New("invalid window geometry")
)

type surface struct {
	id   panel.ID
	rect Rect
}

// Set hosts the floating windows, at most one per panel. Stacking order is
// the order in which windows were opened or raised, topmost last.
type Set struct {
	order []*surface
	byID  map[panel.ID]*surface
}

// NewSet returns an empty window set.
func NewSet() *Set {
	return &Set{byID: make(map[panel.ID]*surface)}
}

// Open shows a window for id at rect.
func (s *Set) Open(id panel.ID, rect Rect) error {
	if _, ok := s.byID[id]; ok {
		return fmt.Errorf("open %s: %w", id, ErrAlreadyOpen)
	}
	if !rect.Valid() {
		return fmt.Errorf("open %s at %s: %w", id, rect, ErrBadGeometry)
	}
	w := &surface{id: id, rect: rect}
	s.byID[id] = w
	s.order = append(s.order, w)
	return nil
}

// Close hides the window for id and returns its final geometry.
func (s *Set) Close(id panel.ID) (Rect, error) {
	w, ok := s.byID[id]
	if !ok {
		return Rect{}, fmt.Errorf("close %s: %w", id, ErrNotOpen)
	}
	delete(s.byID, id)
	for i, entry := range s.order {
		if entry == w {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return w.rect, nil
}

// IsOpen reports whether a window for id is currently shown.
func (s *Set) IsOpen(id panel.ID) bool {
	_, ok := s.byID[id]
	return ok
}

// Geometry returns the current rect for id.
func (s *Set) Geometry(id panel.ID) (Rect, bool) {
	w, ok := s.byID[id]
	if !ok {
		return Rect{}, false
	}
	return w.rect, true
}

// Move shifts an open window. This is user interaction handled by the host
// between frames; placement bookkeeping picks it up on the next refresh.
func (s *Set) Move(id panel.ID, dx, dy int) bool {
	w, ok := s.byID[id]
	if !ok {
		return false
	}
	w.rect = w.rect.Translate(dx, dy)
	if w.rect.X < 0 {
		w.rect.X = 0
	}
	if w.rect.Y < 0 {
		w.rect.Y = 0
	}
	return true
}

// Resize grows or shrinks an open window.
func (s *Set) Resize(id panel.ID, dw, dh int) bool {
	w, ok := s.byID[id]
	if !ok {
		return false
	}
	w.rect = w.rect.Grow(dw, dh)
	return true
}

// Raise moves the window for id to the top of the stacking order.
func (s *Set) Raise(id panel.ID) bool {
	w, ok := s.byID[id]
	if !ok {
		return false
	}
	for i, entry := range s.order {
		if entry == w {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, w)
	return true
}

// Stack lists the open panels bottom to top.
func (s *Set) Stack() []panel.ID {
	ids := make([]panel.ID, 0, len(s.order))
	for _, w := range s.order {
		ids = append(ids, w.id)
	}
	return ids
}

// Len returns the number of open windows.
func (s *Set) Len() int {
	return len(s.order)
}
