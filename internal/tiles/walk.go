package tiles

import (
	"fmt"
	"strings"
)

// Order selects how containers are visited when searching the tree.
type Order int

const (
	Preorder Order = iota
	BreadthFirst
)

func (o Order) String() string {
	if o == BreadthFirst {
		return "breadth-first"
	}
	return "preorder"
}

// ParseOrder resolves a configuration name to an Order.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "preorder", "pre-order", "dfs":
		return Preorder, nil
	case "breadth-first", "breadthfirst", "bfs":
		return BreadthFirst, nil
	default:
		return Preorder, fmt.Errorf("unknown traversal order %q", name)
	}
}

// Walk visits every node from the root in the given order. fn receives the
// node depth; returning false stops the walk.
func (t *Tree) Walk(order Order, fn func(ref Ref, depth int) bool) {
	if t.root == 0 || fn == nil {
		return
	}
	type item struct {
		ref   Ref
		depth int
	}
	pending := []item{{ref: t.root}}
	seen := make(map[Ref]struct{}, len(t.nodes))
	for len(pending) > 0 {
		var cur item
		if order == BreadthFirst {
			cur, pending = pending[0], pending[1:]
		} else {
			cur, pending = pending[len(pending)-1], pending[:len(pending)-1]
		}
		if _, dup := seen[cur.ref]; dup {
			continue
		}
		seen[cur.ref] = struct{}{}
		n, ok := t.nodes[cur.ref]
		if !ok {
			continue
		}
		if !fn(cur.ref, cur.depth) {
			return
		}
		if order == BreadthFirst {
			for _, child := range n.children {
				pending = append(pending, item{ref: child, depth: cur.depth + 1})
			}
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			pending = append(pending, item{ref: n.children[i], depth: cur.depth + 1})
		}
	}
}

// Containers lists every container of kind in traversal order.
func (t *Tree) Containers(kind Kind, order Order) []Ref {
	var out []Ref
	t.Walk(order, func(ref Ref, _ int) bool {
		if t.nodes[ref].kind == kind {
			out = append(out, ref)
		}
		return true
	})
	return out
}

// FirstContainerOfKind returns the first container of kind in traversal order.
func (t *Tree) FirstContainerOfKind(kind Kind, order Order) (Ref, bool) {
	var found Ref
	t.Walk(order, func(ref Ref, _ int) bool {
		if t.nodes[ref].kind == kind {
			found = ref
			return false
		}
		return true
	})
	return found, found != 0
}
