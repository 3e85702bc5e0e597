package tiles

// SimplifyOptions controls the cleanup done after a leaf leaves the tree.
type SimplifyOptions struct {
	// PruneEmpty removes containers left without children, walking upward.
	PruneEmpty bool
	// CollapseSingle replaces a split holding a single child by that child.
	CollapseSingle bool
}

// DefaultSimplify prunes empty containers and keeps single-child splits.
var DefaultSimplify = SimplifyOptions{PruneEmpty: true}

// Simplify cleans up starting at the vacated container ref and returns the
// containers that were removed. A missing ref is a no-op.
func (t *Tree) Simplify(ref Ref, opts SimplifyOptions) []Ref {
	var removed []Ref
	cur := ref
	for cur != 0 {
		n, ok := t.nodes[cur]
		if !ok || !n.kind.IsContainer() {
			break
		}
		parent := n.parent
		switch {
		case opts.PruneEmpty && len(n.children) == 0:
			t.detach(cur)
			delete(t.nodes, cur)
			removed = append(removed, cur)
			cur = parent
		case opts.CollapseSingle && n.kind.linear() && len(n.children) == 1:
			t.collapse(cur)
			removed = append(removed, cur)
			cur = parent
		default:
			cur = 0
		}
	}
	return removed
}

// collapse swaps a single-child split for its child in place.
func (t *Tree) collapse(ref Ref) {
	n := t.nodes[ref]
	child := n.children[0]
	c := t.nodes[child]
	c.parent = n.parent
	if n.parent == 0 {
		t.root = child
	} else {
		p := t.nodes[n.parent]
		if idx := indexOf(p.children, ref); idx >= 0 {
			p.children[idx] = child
		}
		if p.active == ref {
			p.active = child
		}
	}
	delete(t.nodes, ref)
}
