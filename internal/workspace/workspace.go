package workspace

import (
	"fmt"
	"strings"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
)

const (
	LayoutDefault = "default"
	LayoutEmpty   = "empty"
)

// Layouts lists the initial layouts New understands.
func Layouts() []string {
	return []string{LayoutDefault, LayoutEmpty}
}

// DefaultGeometry is where panels first float when nothing else is known.
// Settings and Presets open along the right edge.
func DefaultGeometry() map[panel.ID]window.Rect {
	return map[panel.ID]window.Rect{
		panel.Settings: {X: 60, Y: 2, W: 30, H: 12},
		panel.Presets:  {X: 60, Y: 15, W: 30, H: 12},
	}
}

// Config selects the initial layout and engine behaviour.
type Config struct {
	Layout         string
	Order          tiles.Order
	CollapseSingle bool
	Geometry       map[panel.ID]window.Rect
	Permanent      []panel.ID
	// Screen is the terminal size in cells. Default rectangles that would
	// hang off its right or bottom edge are pulled back inside.
	Screen window.Rect
}

// Workspace bundles the collaborators the engine drives.
type Workspace struct {
	Layout   string
	Order    tiles.Order
	Registry *panel.Registry
	Tree     *tiles.Tree
	Windows  *window.Set
	Ledger   state.Ledger
	Queue    *dock.Queue
	Engine   *dock.Engine
}

// New builds the registry, the initial tree and ledger, and an engine.
func New(cfg Config) (*Workspace, error) {
	layout := strings.ToLower(strings.TrimSpace(cfg.Layout))
	if layout == "" {
		layout = LayoutDefault
	}

	reg := panel.NewRegistry(panel.WithPermanent(cfg.Permanent...))
	tree := tiles.NewTree()
	var (
		initial map[panel.ID]state.Placement
		err     error
	)
	switch layout {
	case LayoutDefault:
		initial, err = buildDefault(tree, reg)
	case LayoutEmpty:
		initial = map[panel.ID]state.Placement{}
	default:
		return nil, fmt.Errorf("unknown layout %q (want one of %s)", cfg.Layout, strings.Join(Layouts(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("build %s layout: %w", layout, err)
	}

	geometry := DefaultGeometry()
	for id, r := range cfg.Geometry {
		if r.Valid() {
			geometry[id] = r
		}
	}
	for id, r := range geometry {
		geometry[id] = FitToScreen(r, cfg.Screen)
	}
	simplify := tiles.DefaultSimplify
	simplify.CollapseSingle = cfg.CollapseSingle

	ws := &Workspace{
		Layout:   layout,
		Order:    cfg.Order,
		Registry: reg,
		Tree:     tree,
		Windows:  window.NewSet(),
		Ledger:   state.NewLedger(reg.IDs(), initial),
		Queue:    dock.NewQueue(),
	}
	ws.Engine = dock.New(ws.Registry, ws.Tree, ws.Windows, ws.Ledger, dock.Options{
		Order:    cfg.Order,
		Simplify: simplify,
		Geometry: geometry,
	})
	events.App.Layout(layout, tree.Dump())
	return ws, nil
}

// FitToScreen shifts r left and up until it fits inside screen. A screen
// without a size leaves r alone.
func FitToScreen(r, screen window.Rect) window.Rect {
	if screen.W > 0 && r.X+r.W > screen.W {
		r.X = max(0, screen.W-r.W)
	}
	if screen.H > 0 && r.Y+r.H > screen.H {
		r.Y = max(0, screen.H-r.H)
	}
	return r
}

// buildDefault lays out a left column of Settings/Presets over Stats, then
// Scene, then Dataset, side by side.
func buildDefault(tree *tiles.Tree, reg *panel.Registry) (map[panel.ID]state.Placement, error) {
	initial := map[panel.ID]state.Placement{}
	root, err := tree.AddContainer(0, tiles.KindHorizontal)
	if err != nil {
		return nil, err
	}
	column, err := tree.AddContainer(root, tiles.KindVertical)
	if err != nil {
		return nil, err
	}
	groups := []struct {
		parent tiles.Ref
		ids    []panel.ID
	}{
		{column, []panel.ID{panel.Settings, panel.Presets}},
		{column, []panel.ID{panel.Stats}},
		{root, []panel.ID{panel.Scene}},
		{root, []panel.ID{panel.Dataset}},
	}
	for _, g := range groups {
		tabs, err := tree.AddContainer(g.parent, tiles.KindTabs)
		if err != nil {
			return nil, err
		}
		for _, id := range g.ids {
			leaf, err := tree.InsertLeaf(tabs, reg.ContentOf(id))
			if err != nil {
				return nil, err
			}
			initial[id] = state.Docked{Leaf: leaf}
		}
	}
	return initial, nil
}

// Drive applies everything submitted since the last frame.
func (w *Workspace) Drive() []dock.Diagnostic {
	return w.Engine.Drive(w.Queue)
}

// Closed lists closed panels in canonical order.
func (w *Workspace) Closed() []panel.ID {
	var ids []panel.ID
	for _, entry := range w.Ledger.Entries() {
		if _, ok := entry.Placement.(state.Closed); ok {
			ids = append(ids, entry.Panel)
		}
	}
	return ids
}
