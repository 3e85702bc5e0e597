package state

import (
	"fmt"

	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
)

// Placement is where a panel currently lives. Exactly one of Docked,
// Floating or Closed.
type Placement interface {
	placement()
	fmt.Stringer
}

// Docked panels are a leaf in the tile tree.
type Docked struct {
	Leaf tiles.Ref
}

// Floating panels own a window. LastParent is the container the panel most
// recently left, if any.
type Floating struct {
	Geometry   window.Rect
	LastParent tiles.Ref
}

// Closed panels are shown nowhere; Hint says how to bring them back.
type Closed struct {
	Hint Hint
}

func (Docked) placement()   {}
func (Floating) placement() {}
func (Closed) placement()   {}

func (d Docked) String() string {
	return "docked " + d.Leaf.String()
}

func (f Floating) String() string {
	if f.LastParent == 0 {
		return "floating " + f.Geometry.String()
	}
	return fmt.Sprintf("floating %s from %s", f.Geometry, f.LastParent)
}

func (c Closed) String() string {
	return "closed (" + c.Hint.String() + ")"
}

// HintKind records what a closed panel was before it closed.
type HintKind int

const (
	HintNone HintKind = iota
	HintWasDocked
	HintWasFloating
)

// Hint is the prior placement of a closed panel.
type Hint struct {
	Kind     HintKind
	Parent   tiles.Ref
	Geometry window.Rect
}

// WasDocked builds a hint for a panel that left container parent.
func WasDocked(parent tiles.Ref) Hint {
	return Hint{Kind: HintWasDocked, Parent: parent}
}

// WasFloating builds a hint for a panel closed from a window at geometry.
// lastParent carries over the container the window was undocked from.
func WasFloating(geometry window.Rect, lastParent tiles.Ref) Hint {
	return Hint{Kind: HintWasFloating, Geometry: geometry, Parent: lastParent}
}

func (h Hint) String() string {
	switch h.Kind {
	case HintWasDocked:
		return "was docked in " + h.Parent.String()
	case HintWasFloating:
		return "was floating at " + h.Geometry.String()
	default:
		return "no hint"
	}
}

// Label is the short state name used in tables and traces.
func Label(p Placement) string {
	switch p.(type) {
	case Docked:
		return "docked"
	case Floating:
		return "floating"
	case Closed:
		return "closed"
	default:
		return "missing"
	}
}
