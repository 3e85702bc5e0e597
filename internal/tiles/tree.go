package tiles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/paneldock/internal/panel"
)

// Ref addresses a leaf or container in a Tree. The zero value means none.
type Ref uint64

func (r Ref) String() string {
	if r == 0 {
		return "-"
	}
	return fmt.Sprintf("#%d", uint64(r))
}

// Kind is the node kind of a tree entry.
type Kind int

const (
	KindLeaf Kind = iota + 1
	KindTabs
	KindHorizontal
	KindVertical
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindTabs:
		return "tabs"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// IsContainer reports whether k holds children.
func (k Kind) IsContainer() bool {
	return k == KindTabs || k == KindHorizontal || k == KindVertical
}

// AcceptsLeaves reports whether a leaf may be inserted directly into a
// container of kind k. Only tab groups hold panels.
func (k Kind) AcceptsLeaves() bool {
	return k == KindTabs
}

func (k Kind) linear() bool {
	return k == KindHorizontal || k == KindVertical
}

var (
	ErrNotFound     = errors.New("tile not found")
	ErrNotContainer = errors.New("tile is not a container")
	ErrNotLeaf      = errors.New("tile is not a leaf")
	ErrRejected     = errors.New("container rejected insert")
)

type node struct {
	kind     Kind
	parent   Ref
	children []Ref
	active   Ref
	content  *panel.Content
}

// Tree is an in-memory tiling layout of tab groups and linear splits.
// Leaves carry a panel content handle; the tree never copies content.
type Tree struct {
	nodes map[Ref]*node
	root  Ref
	next  Ref
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[Ref]*node)}
}

func (t *Tree) alloc(n *node) Ref {
	t.next++
	t.nodes[t.next] = n
	return t.next
}

// Root returns the root container, or zero for an empty tree.
func (t *Tree) Root() Ref {
	return t.root
}

// Len returns the number of nodes, leaves and containers.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Exists reports whether ref is still part of the tree.
func (t *Tree) Exists(ref Ref) bool {
	if ref == 0 {
		return false
	}
	_, ok := t.nodes[ref]
	return ok
}

// KindOf returns the kind of ref.
func (t *Tree) KindOf(ref Ref) (Kind, bool) {
	n, ok := t.nodes[ref]
	if !ok {
		return 0, false
	}
	return n.kind, true
}

// ParentOf returns the container holding ref. The root has no parent.
func (t *Tree) ParentOf(ref Ref) (Ref, bool) {
	n, ok := t.nodes[ref]
	if !ok || n.parent == 0 {
		return 0, false
	}
	return n.parent, true
}

// Children returns a copy of the child list of a container.
func (t *Tree) Children(ref Ref) []Ref {
	n, ok := t.nodes[ref]
	if !ok || len(n.children) == 0 {
		return nil
	}
	out := make([]Ref, len(n.children))
	copy(out, n.children)
	return out
}

// Active returns the visible child of a tab group.
func (t *Tree) Active(ref Ref) Ref {
	if n, ok := t.nodes[ref]; ok {
		return n.active
	}
	return 0
}

// Content returns the content handle held by a leaf.
func (t *Tree) Content(ref Ref) *panel.Content {
	if n, ok := t.nodes[ref]; ok {
		return n.content
	}
	return nil
}

// AddContainer creates an empty container under parent. With a zero parent
// the container becomes the root, which is only allowed on an empty tree.
func (t *Tree) AddContainer(parent Ref, kind Kind) (Ref, error) {
	if !kind.IsContainer() {
		return 0, fmt.Errorf("add %s: %w", kind, ErrNotContainer)
	}
	if parent == 0 {
		if t.root != 0 {
			return 0, fmt.Errorf("add %s root: %w", kind, ErrRejected)
		}
		t.root = t.alloc(&node{kind: kind})
		return t.root, nil
	}
	p, ok := t.nodes[parent]
	if !ok {
		return 0, fmt.Errorf("add %s under %s: %w", kind, parent, ErrNotFound)
	}
	if !p.kind.IsContainer() {
		return 0, fmt.Errorf("add %s under %s: %w", kind, parent, ErrNotContainer)
	}
	ref := t.alloc(&node{kind: kind, parent: parent})
	p.children = append(p.children, ref)
	if p.kind == KindTabs && p.active == 0 {
		p.active = ref
	}
	return ref, nil
}

// AddRootContainer creates a new container reachable from the root. An empty
// tree gets it as root; a linear root gets it appended; any other root is
// split horizontally with the new container on the right.
func (t *Tree) AddRootContainer(kind Kind) (Ref, error) {
	if t.root == 0 {
		return t.AddContainer(0, kind)
	}
	root := t.nodes[t.root]
	if root.kind.linear() {
		return t.AddContainer(t.root, kind)
	}
	if !kind.IsContainer() {
		return 0, fmt.Errorf("add %s: %w", kind, ErrNotContainer)
	}
	old := t.root
	split := t.alloc(&node{kind: KindHorizontal, children: []Ref{old}})
	root.parent = split
	t.root = split
	return t.AddContainer(split, kind)
}

// InsertLeaf appends a leaf holding content to a tab group.
func (t *Tree) InsertLeaf(container Ref, content *panel.Content) (Ref, error) {
	if content == nil {
		return 0, fmt.Errorf("insert into %s: nil content: %w", container, ErrRejected)
	}
	p, ok := t.nodes[container]
	if !ok {
		return 0, fmt.Errorf("insert %s into %s: %w", content.ID, container, ErrNotFound)
	}
	if !p.kind.IsContainer() {
		return 0, fmt.Errorf("insert %s into %s: %w", content.ID, container, ErrNotContainer)
	}
	if !p.kind.AcceptsLeaves() {
		return 0, fmt.Errorf("insert %s into %s %s: %w", content.ID, p.kind, container, ErrRejected)
	}
	ref := t.alloc(&node{kind: KindLeaf, parent: container, content: content})
	p.children = append(p.children, ref)
	if p.active == 0 {
		p.active = ref
	}
	return ref, nil
}

// RemoveLeaf detaches a leaf and hands back its content. The vacated
// container is left in place; call Simplify to prune it.
func (t *Tree) RemoveLeaf(ref Ref) (*panel.Content, error) {
	n, ok := t.nodes[ref]
	if !ok {
		return nil, fmt.Errorf("remove %s: %w", ref, ErrNotFound)
	}
	if n.kind != KindLeaf {
		return nil, fmt.Errorf("remove %s: %w", ref, ErrNotLeaf)
	}
	t.detach(ref)
	delete(t.nodes, ref)
	return n.content, nil
}

// RemoveContainer deletes an empty container without touching its parent.
func (t *Tree) RemoveContainer(ref Ref) error {
	n, ok := t.nodes[ref]
	if !ok {
		return fmt.Errorf("remove container %s: %w", ref, ErrNotFound)
	}
	if !n.kind.IsContainer() {
		return fmt.Errorf("remove container %s: %w", ref, ErrNotContainer)
	}
	if len(n.children) > 0 {
		return fmt.Errorf("remove container %s with %d children: %w", ref, len(n.children), ErrRejected)
	}
	t.detach(ref)
	delete(t.nodes, ref)
	return nil
}

// detach unlinks ref from its parent, or clears the root.
func (t *Tree) detach(ref Ref) {
	n := t.nodes[ref]
	if n.parent == 0 {
		if t.root == ref {
			t.root = 0
		}
		return
	}
	p := t.nodes[n.parent]
	idx := indexOf(p.children, ref)
	if idx < 0 {
		return
	}
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	if p.active == ref {
		p.active = 0
		if len(p.children) > 0 {
			if idx >= len(p.children) {
				idx = len(p.children) - 1
			}
			p.active = p.children[idx]
		}
	}
	n.parent = 0
}

// Activate makes leaf the visible tab of its tab group.
func (t *Tree) Activate(leaf Ref) error {
	n, ok := t.nodes[leaf]
	if !ok {
		return fmt.Errorf("activate %s: %w", leaf, ErrNotFound)
	}
	if n.kind != KindLeaf {
		return fmt.Errorf("activate %s: %w", leaf, ErrNotLeaf)
	}
	if n.parent == 0 {
		return nil
	}
	p := t.nodes[n.parent]
	if p.kind == KindTabs {
		p.active = leaf
	}
	return nil
}

// LeavesFor lists every leaf holding the panel id, in preorder.
func (t *Tree) LeavesFor(id panel.ID) []Ref {
	var out []Ref
	t.Walk(Preorder, func(ref Ref, _ int) bool {
		if n := t.nodes[ref]; n.kind == KindLeaf && n.content != nil && n.content.ID == id {
			out = append(out, ref)
		}
		return true
	})
	return out
}

// Dump renders the tree as an indented outline, one node per line.
func (t *Tree) Dump() string {
	if t.root == 0 {
		return "(empty)"
	}
	var b strings.Builder
	t.Walk(Preorder, func(ref Ref, depth int) bool {
		n := t.nodes[ref]
		b.WriteString(strings.Repeat("  ", depth))
		if n.kind == KindLeaf {
			name := "?"
			if n.content != nil {
				name = n.content.ID.String()
			}
			fmt.Fprintf(&b, "%s %s", ref, name)
		} else {
			fmt.Fprintf(&b, "%s %s", ref, n.kind)
			if n.active != 0 {
				fmt.Fprintf(&b, " active=%s", n.active)
			}
		}
		b.WriteByte('\n')
		return true
	})
	return strings.TrimRight(b.String(), "\n")
}

func indexOf(refs []Ref, target Ref) int {
	for i, ref := range refs {
		if ref == target {
			return i
		}
	}
	return -1
}
