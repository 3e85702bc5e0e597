package dock

import (
	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
)

// TileTree is the docking layout the engine places leaves into.
type TileTree interface {
	Root() tiles.Ref
	InsertLeaf(container tiles.Ref, content *panel.Content) (tiles.Ref, error)
	RemoveLeaf(leaf tiles.Ref) (*panel.Content, error)
	ParentOf(ref tiles.Ref) (tiles.Ref, bool)
	FirstContainerOfKind(kind tiles.Kind, order tiles.Order) (tiles.Ref, bool)
	AddRootContainer(kind tiles.Kind) (tiles.Ref, error)
	RemoveContainer(ref tiles.Ref) error
	Simplify(container tiles.Ref, opts tiles.SimplifyOptions) []tiles.Ref
	Exists(ref tiles.Ref) bool
	KindOf(ref tiles.Ref) (tiles.Kind, bool)
	Activate(leaf tiles.Ref) error
	Content(leaf tiles.Ref) *panel.Content
	LeavesFor(id panel.ID) []tiles.Ref
}

// WindowHost shows floating panels.
type WindowHost interface {
	Open(id panel.ID, rect window.Rect) error
	Close(id panel.ID) (window.Rect, error)
	IsOpen(id panel.ID) bool
	Geometry(id panel.ID) (window.Rect, bool)
}

// Registry hands out panel content.
type Registry interface {
	ContentOf(id panel.ID) *panel.Content
	IDs() []panel.ID
}

// DefaultRect is used when neither the ledger nor Options know a geometry.
var DefaultRect = window.Rect{X: 4, Y: 2, W: 36, H: 10}

// Options tunes engine behaviour.
type Options struct {
	// Order is the traversal used when searching for a tab group.
	Order tiles.Order
	// Simplify runs on a container after a leaf leaves it.
	Simplify tiles.SimplifyOptions
	// Geometry holds per-panel rectangles for a first undock.
	Geometry map[panel.ID]window.Rect
	// Fallback replaces DefaultRect when set.
	Fallback window.Rect
}

// Engine owns the tree, the window set and the ledger while it drives a
// frame. Nothing else may mutate them.
type Engine struct {
	registry Registry
	tree     TileTree
	windows  WindowHost
	ledger   state.Ledger
	opts     Options
}

// New returns an engine over the given collaborators.
func New(registry Registry, tree TileTree, windows WindowHost, ledger state.Ledger, opts Options) *Engine {
	if opts.Geometry == nil {
		opts.Geometry = map[panel.ID]window.Rect{}
	}
	return &Engine{
		registry: registry,
		tree:     tree,
		windows:  windows,
		ledger:   ledger,
		opts:     opts,
	}
}

// Placement returns the ledger row for id.
func (e *Engine) Placement(id panel.ID) (state.Placement, bool) {
	return e.ledger.Get(id)
}

// Entries returns every ledger row in canonical order.
func (e *Engine) Entries() []state.Entry {
	return e.ledger.Entries()
}

// Drive runs one frame: refresh floating geometry, then drain src and apply
// each request in order. A nil src only refreshes.
func (e *Engine) Drive(src Source) []Diagnostic {
	e.Refresh()
	if src == nil {
		return nil
	}
	reqs := src.Drain()
	events.Queue.Drain(len(reqs))
	var diags []Diagnostic
	for _, req := range reqs {
		diags = append(diags, e.Apply(req)...)
	}
	for _, d := range diags {
		events.Placement.Diagnostic(string(d.Kind), d.Severity.String(), d.Panel.String(), d.Op.String(), d.Detail)
	}
	return diags
}

// Refresh copies window geometry into the ledger for floating panels. A
// window the host no longer shows is recorded as closed from where it was.
func (e *Engine) Refresh() {
	for _, entry := range e.ledger.Entries() {
		f, ok := entry.Placement.(state.Floating)
		if !ok {
			continue
		}
		g, open := e.windows.Geometry(entry.Panel)
		if !open {
			e.ledger.Set(entry.Panel, state.Closed{Hint: state.WasFloating(f.Geometry, f.LastParent)})
			events.Placement.Transition("", "refresh", entry.Panel.String(), "floating", "closed")
			continue
		}
		if g != f.Geometry {
			e.ledger.Set(entry.Panel, state.Floating{Geometry: g, LastParent: f.LastParent})
			events.Placement.Refresh(entry.Panel.String(), g.String())
		}
	}
}

// Apply performs a single request. Drive is the normal entry point; Apply is
// exported for callers that run their own frame loop.
func (e *Engine) Apply(req Request) []Diagnostic {
	content := e.registry.ContentOf(req.Panel)
	if content == nil {
		return []Diagnostic{newDiagnostic(KindUnknownPanel, req, "no content registered")}
	}
	cur, ok := e.ledger.Get(req.Panel)
	if !ok {
		return []Diagnostic{newDiagnostic(KindInvariantViolation, req, "panel missing from ledger")}
	}

	var diags []Diagnostic
	switch req.Op {
	case OpUndock:
		diags = e.undock(req, content, cur)
	case OpDock, OpDockTo:
		diags = e.dock(req, content, cur)
	case OpClose:
		diags = e.close(req, content, cur)
	case OpReopen:
		diags = e.reopen(req, content, cur)
	case OpActivate:
		diags = e.activate(req, cur)
	default:
		diags = []Diagnostic{newDiagnostic(KindRefused, req, "unsupported operation")}
	}

	after, _ := e.ledger.Get(req.Panel)
	if after != cur {
		events.Placement.Transition(req.ID.String(), req.Op.String(), req.Panel.String(), state.Label(cur), state.Label(after))
		if err := e.check(req.Panel, after); err != nil {
			diags = append(diags, newDiagnostic(KindInvariantViolation, req, "after %s: %v", req.Op, err))
		}
	}
	return diags
}

// geometryFor picks the rectangle for a panel entering a window.
func (e *Engine) geometryFor(id panel.ID) window.Rect {
	if g, ok := e.ledger.Remembered(id); ok {
		return g
	}
	if g, ok := e.opts.Geometry[id]; ok && g.Valid() {
		return g
	}
	if e.opts.Fallback.Valid() {
		return e.opts.Fallback
	}
	return DefaultRect
}

// remembered is the container a panel should return to, if it has one.
func remembered(p state.Placement) tiles.Ref {
	switch v := p.(type) {
	case state.Floating:
		return v.LastParent
	case state.Closed:
		return v.Hint.Parent
	}
	return 0
}
