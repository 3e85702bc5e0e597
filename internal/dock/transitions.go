package dock

import (
	"errors"

	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
)

// resolveLeaf checks the leaf captured by the request against the ledger
// and returns the leaf with its parent container.
func (e *Engine) resolveLeaf(req Request, d state.Docked) (tiles.Ref, tiles.Ref, *Diagnostic) {
	leaf := req.Leaf
	if leaf == 0 {
		leaf = d.Leaf
	}
	if leaf != d.Leaf {
		diag := newDiagnostic(KindStaleReference, req, "leaf %s is not the panel's leaf %s", leaf, d.Leaf)
		return 0, 0, &diag
	}
	if !e.tree.Exists(leaf) {
		diag := newDiagnostic(KindStaleReference, req, "leaf %s no longer exists", leaf)
		return 0, 0, &diag
	}
	parent, ok := e.tree.ParentOf(leaf)
	if !ok {
		diag := newDiagnostic(KindStaleReference, req, "leaf %s has no parent", leaf)
		return 0, 0, &diag
	}
	return leaf, parent, nil
}

func (e *Engine) precheck(req Request, cur state.Placement) *Diagnostic {
	if err := e.check(req.Panel, cur); err != nil {
		diag := newDiagnostic(KindInvariantViolation, req, "refused: %v", err)
		return &diag
	}
	return nil
}

func one(d Diagnostic) []Diagnostic { return []Diagnostic{d} }

func (e *Engine) undock(req Request, content *panel.Content, cur state.Placement) []Diagnostic {
	var d state.Docked
	switch v := cur.(type) {
	case state.Docked:
		d = v
	case state.Floating:
		if req.Leaf != 0 {
			return one(newDiagnostic(KindStaleReference, req, "leaf %s is gone, panel is floating", req.Leaf))
		}
		return one(newDiagnostic(KindAlreadyInRequestedState, req, "already floating"))
	default:
		return one(newDiagnostic(KindStaleReference, req, "panel is closed"))
	}
	if content.Permanent {
		return one(newDiagnostic(KindRefused, req, "%s is permanent", req.Panel))
	}
	leaf, parent, stale := e.resolveLeaf(req, d)
	if stale != nil {
		return one(*stale)
	}
	if diag := e.precheck(req, cur); diag != nil {
		return one(*diag)
	}

	g := e.geometryFor(req.Panel)
	if err := e.windows.Open(req.Panel, g); err != nil {
		return one(newDiagnostic(KindRefused, req, "window host: %v", err))
	}
	if _, err := e.tree.RemoveLeaf(leaf); err != nil {
		if _, cerr := e.windows.Close(req.Panel); cerr != nil {
			events.Placement.Rollback(req.ID.String(), req.Panel.String(), "close-window", cerr)
		}
		events.Placement.Rollback(req.ID.String(), req.Panel.String(), "remove-leaf", err)
		return one(newDiagnostic(KindStaleReference, req, "remove leaf: %v", err))
	}
	e.ledger.Set(req.Panel, state.Floating{Geometry: g, LastParent: parent})
	e.tree.Simplify(parent, e.opts.Simplify)
	return nil
}

func (e *Engine) dock(req Request, content *panel.Content, cur state.Placement) []Diagnostic {
	if _, ok := cur.(state.Docked); ok {
		return one(newDiagnostic(KindAlreadyInRequestedState, req, "already docked"))
	}
	if diag := e.precheck(req, cur); diag != nil {
		return one(*diag)
	}
	return e.dockInto(req, content, cur)
}

// dockInto inserts a leaf for a floating or closed panel. On failure the
// tree, the window set and the ledger are left as they were.
func (e *Engine) dockInto(req Request, content *panel.Content, cur state.Placement) []Diagnostic {
	rootBefore := e.tree.Root()
	explicit := tiles.Ref(0)
	if req.Op == OpDockTo {
		explicit = req.Target
		if explicit == 0 {
			return one(newDiagnostic(KindStaleReference, req, "dock-to without a target"))
		}
	}
	sel, err := SelectTarget(e.tree, explicit, remembered(cur), e.opts.Order)
	if err != nil {
		if errors.Is(err, ErrStaleTarget) {
			return one(newDiagnostic(KindStaleReference, req, "%v", err))
		}
		return one(newDiagnostic(KindDockingFailed, req, "%v", err))
	}
	events.Placement.Target(req.Panel.String(), sel.Tier.String(), sel.Container.String())

	leaf, err := e.tree.InsertLeaf(sel.Container, content)
	if err != nil {
		e.undoSelection(sel, rootBefore)
		events.Placement.Rollback(req.ID.String(), req.Panel.String(), "insert-leaf", err)
		return one(newDiagnostic(KindDockingFailed, req, "insert into %s (%s): %v", sel.Container, sel.Tier, err))
	}
	if e.windows.IsOpen(req.Panel) {
		g, err := e.windows.Close(req.Panel)
		if err != nil {
			if _, rerr := e.tree.RemoveLeaf(leaf); rerr != nil {
				events.Placement.Rollback(req.ID.String(), req.Panel.String(), "remove-leaf", rerr)
			}
			e.undoSelection(sel, rootBefore)
			events.Placement.Rollback(req.ID.String(), req.Panel.String(), "close-window", err)
			return one(newDiagnostic(KindDockingFailed, req, "close window: %v", err))
		}
		e.ledger.Remember(req.Panel, g)
	}
	if err := e.tree.Activate(leaf); err != nil {
		events.Placement.Rollback(req.ID.String(), req.Panel.String(), "activate", err)
	}
	e.ledger.Set(req.Panel, state.Docked{Leaf: leaf})
	return nil
}

// undoSelection prunes a container the selector created, and the split it
// may have wrapped around the old root.
func (e *Engine) undoSelection(sel Selection, rootBefore tiles.Ref) {
	if !sel.Created {
		return
	}
	if err := e.tree.RemoveContainer(sel.Container); err != nil {
		events.Placement.Rollback("", "", "remove-container", err)
		return
	}
	root := e.tree.Root()
	if rootBefore != 0 && root != rootBefore && e.tree.Exists(rootBefore) {
		e.tree.Simplify(root, tiles.SimplifyOptions{CollapseSingle: true})
	}
}

func (e *Engine) close(req Request, content *panel.Content, cur state.Placement) []Diagnostic {
	if _, ok := cur.(state.Closed); ok {
		return one(newDiagnostic(KindAlreadyInRequestedState, req, "already closed"))
	}
	if content.Permanent {
		return one(newDiagnostic(KindRefused, req, "%s is permanent", req.Panel))
	}
	switch v := cur.(type) {
	case state.Docked:
		leaf, parent, stale := e.resolveLeaf(req, v)
		if stale != nil {
			return one(*stale)
		}
		if diag := e.precheck(req, cur); diag != nil {
			return one(*diag)
		}
		if _, err := e.tree.RemoveLeaf(leaf); err != nil {
			return one(newDiagnostic(KindStaleReference, req, "remove leaf: %v", err))
		}
		e.ledger.Set(req.Panel, state.Closed{Hint: state.WasDocked(parent)})
		e.tree.Simplify(parent, e.opts.Simplify)
	case state.Floating:
		if diag := e.precheck(req, cur); diag != nil {
			return one(*diag)
		}
		g, err := e.windows.Close(req.Panel)
		if err != nil {
			return one(newDiagnostic(KindInvariantViolation, req, "close window: %v", err))
		}
		e.ledger.Set(req.Panel, state.Closed{Hint: state.WasFloating(g, v.LastParent)})
	}
	return nil
}

func (e *Engine) reopen(req Request, content *panel.Content, cur state.Placement) []Diagnostic {
	c, ok := cur.(state.Closed)
	if !ok {
		return one(newDiagnostic(KindAlreadyInRequestedState, req, "already open (%s)", state.Label(cur)))
	}
	if diag := e.precheck(req, cur); diag != nil {
		return one(*diag)
	}
	switch c.Hint.Kind {
	case state.HintWasDocked:
		return e.dockInto(req, content, cur)
	case state.HintWasFloating:
		return e.float(req, c.Hint.Geometry)
	default:
		return e.float(req, e.geometryFor(req.Panel))
	}
}

// float opens a window for a closed panel with no last parent.
func (e *Engine) float(req Request, g window.Rect) []Diagnostic {
	if !g.Valid() {
		g = e.geometryFor(req.Panel)
	}
	if err := e.windows.Open(req.Panel, g); err != nil {
		return one(newDiagnostic(KindRefused, req, "window host: %v", err))
	}
	e.ledger.Set(req.Panel, state.Floating{Geometry: g})
	return nil
}

func (e *Engine) activate(req Request, cur state.Placement) []Diagnostic {
	d, ok := cur.(state.Docked)
	if !ok {
		return one(newDiagnostic(KindStaleReference, req, "panel is %s", state.Label(cur)))
	}
	leaf := req.Leaf
	if leaf == 0 {
		leaf = d.Leaf
	}
	if leaf != d.Leaf {
		return one(newDiagnostic(KindStaleReference, req, "leaf %s is not the panel's leaf %s", leaf, d.Leaf))
	}
	if err := e.tree.Activate(leaf); err != nil {
		return one(newDiagnostic(KindStaleReference, req, "%v", err))
	}
	return nil
}
