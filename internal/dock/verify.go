package dock

import (
	"fmt"

	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
)

// check compares the collaborators' view of id with the placement p.
func (e *Engine) check(id panel.ID, p state.Placement) error {
	leaves := e.tree.LeavesFor(id)
	open := e.windows.IsOpen(id)
	switch v := p.(type) {
	case state.Docked:
		if open {
			return fmt.Errorf("%s docked at %s but also has a window", id, v.Leaf)
		}
		if len(leaves) != 1 || leaves[0] != v.Leaf {
			return fmt.Errorf("%s docked at %s but tree holds %v", id, v.Leaf, leaves)
		}
		if got := e.tree.Content(v.Leaf); got != e.registry.ContentOf(id) {
			return fmt.Errorf("%s leaf %s does not hold the registry content", id, v.Leaf)
		}
	case state.Floating:
		if len(leaves) != 0 {
			return fmt.Errorf("%s floating but tree holds %v", id, leaves)
		}
		if !open {
			return fmt.Errorf("%s floating without a window", id)
		}
	case state.Closed:
		if len(leaves) != 0 {
			return fmt.Errorf("%s closed but tree holds %v", id, leaves)
		}
		if open {
			return fmt.Errorf("%s closed but has a window", id)
		}
	default:
		return fmt.Errorf("%s has no placement", id)
	}
	return nil
}

// Verify checks every registered panel against the tree and the window set.
// It returns one diagnostic per panel whose placement is inconsistent.
func (e *Engine) Verify() []Diagnostic {
	var diags []Diagnostic
	for _, id := range e.registry.IDs() {
		p, _ := e.ledger.Get(id)
		if err := e.check(id, p); err != nil {
			diags = append(diags, newDiagnostic(KindInvariantViolation, Request{Panel: id}, "%v", err))
		}
	}
	dump := ""
	if d, ok := e.tree.(interface{ Dump() string }); ok {
		dump = d.Dump()
	}
	events.Placement.Verify(len(diags), dump)
	return diags
}
